package feedback

import (
	"errors"

	feedbackerrors "sharda-hr/internal/feedback/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapCycleError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feedbackerrors.ErrCycleNotFound
	}
	return err
}

func mapAssignmentError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feedbackerrors.ErrAssignmentNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		switch pgErr.ConstraintName {
		case "uq_feedback_assignment":
			return feedbackerrors.ErrAssignmentExists
		case "uq_feedback_response_assignment":
			return feedbackerrors.ErrAlreadySubmitted
		}
	}
	return err
}
