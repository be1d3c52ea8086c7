package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// Login failures carry the exact Turkish strings the panel shows the user.
var (
	ErrUserNotFound    = errors.New("Kullanıcı bulunamadı!")
	ErrWrongPassword   = errors.New("Hatalı şifre!")
	ErrAccountDisabled = errors.New("Hesabınız pasif durumda. Yönetici ile iletişime geçin.")
)
