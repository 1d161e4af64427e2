package repository

import (
	"context"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

func (r *repository) SaveEvent(ctx context.Context, event model.Event) error {
	q, args, err := qb.Insert(eventsTableName).
		Columns("event_type", "entity_id", "actor", "occurred_at").
		Values(event.Type, event.EntityID, event.Actor, event.OccurredAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) GetStats(ctx context.Context) (model.StatsInfo, error) {
	const q = `
	select event_type, count(*) as cnt, max(occurred_at) as last_occurred_at
	from events
	group by event_type
	order by event_type
`
	stats := make([]model.EventStats, 0)
	if err := r.db.SelectContext(ctx, &stats, q); err != nil {
		return model.StatsInfo{}, err
	}
	return model.StatsInfo{Data: stats}, nil
}
