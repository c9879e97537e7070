package queries

import "residencial-admin/internal/pkg/errs"

func validation(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}
