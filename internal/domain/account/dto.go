package account

// Credentials - тело запросов регистрации и входа.
// Указатели позволяют отличить отсутствующее поле от пустого.
type Credentials struct {
	Username *string `json:"username,omitempty" doc:"Имя пользователя"`
	Password *string `json:"password,omitempty" doc:"Пароль"`
}

func NewCredentials(username, password string) Credentials {
	return Credentials{Username: &username, Password: &password}
}

type RefreshRequest struct {
	Username string `json:"username,omitempty" doc:"Имя пользователя из истекшего токена"`
}

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
