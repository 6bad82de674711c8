package repository

import (
	"context"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/infra/repository/converter"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
)

type HistoryQueries interface {
	CreateHistoryEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHistoryEntryParams) (int64, error)
}

// HistoryRepository only appends. Rows are never updated.
type HistoryRepository struct {
	queries HistoryQueries
}

func NewHistoryRepository(queries HistoryQueries) *HistoryRepository {
	return &HistoryRepository{queries: queries}
}

func (r *HistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, requestID int64, entry meeting.HistoryEntry) (int64, error) {
	id, err := r.queries.CreateHistoryEntry(ctx, tx, converter.HistoryEntryToCreateParams(requestID, entry))
	if err != nil {
		// a missing parent surfaces as ForeignKeyViolated, which reads as not found
		return 0, infra.WrapRepoErr("failed to append history entry", err)
	}
	return id, nil
}
