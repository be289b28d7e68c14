package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - тело /api/v1/health и проб. Ready совпадает с ответом /readyz.
type Response struct {
	Status string `json:"status" example:"OK" doc:"Статус процесса"`
	Ready  bool   `json:"ready" doc:"Сервер принимает трафик"`
}
