package commands

import (
	"residencial-admin/internal/pkg/errs"
)

// validation marks domain and input errors so handlers answer 400.
func validation(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}

// notFound re-marks a repository miss with the usecase sentinel.
func notFound(err error, sentinel error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
