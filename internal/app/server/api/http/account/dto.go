package account

import "notekeeper/internal/domain/account"

type credentialsInput struct {
	Body account.Credentials
}

type refreshInput struct {
	Authorization string                  `header:"Authorization" doc:"Истекший токен, голый или с префиксом Bearer"`
	Body          *account.RefreshRequest `required:"false"`
}

type tokenOutput struct {
	Body account.TokenResponse
}
