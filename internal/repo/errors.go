package repo

import (
	"github.com/angelmondragon/clubhouse-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
)

// MapError converts persistence failures into API errors. Missing rows become
// NotFound, unique violations become Conflict and anything else is wrapped as
// an internal error labelled with op.
func MapError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case pkgerrors.As(err) != nil:
		return err
	case db.IsNotFound(err):
		return pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
	case db.IsUniqueViolation(err, ""):
		return pkgerrors.New(pkgerrors.CodeConflict, "Slug already in use")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
	}
}
