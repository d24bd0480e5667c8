package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found within
// the acting company's scope.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates a tenant-scoped uniqueness violation, e.g. a chart
// of accounts code or a CPF/CNPJ that already exists for the company.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that an operation is blocked by the current state of
// the resource, e.g. deleting a category that still has ledger entries or a
// scheduled entry that has already been settled.
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrForbidden indicates the acting user may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
