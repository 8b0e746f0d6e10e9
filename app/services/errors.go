package services

import "errors"

var (
	ErrMissingFields      = errors.New("preencha todos os campos")
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrDuplicateEmail     = errors.New("email já cadastrado")
	ErrPasswordMismatch   = errors.New("as senhas não conferem")
	ErrPasswordTooShort   = errors.New("a senha deve ter pelo menos 6 caracteres")
	ErrEmailNotFound      = errors.New("email não encontrado")

	// the administrator's password is fixed and cannot be reset
	ErrAdminResetForbidden = errors.New("não é possível redefinir a senha do administrador")

	// route-protection notices
	ErrSessionRequired = errors.New("faça login para enviar uma proposta")
	ErrAdminRequired   = errors.New("acesso restrito ao administrador")

	ErrInvalidValue = errors.New("valor da proposta inválido")
)
