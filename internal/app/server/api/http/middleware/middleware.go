package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container копит мидлвари для следующего хендлера.
type Container struct {
	huma.Middlewares
}

func NewContainer() *Container {
	return &Container{
		Middlewares: make(huma.Middlewares, 0),
	}
}

// Add добавляет мидлварь в конец цепочки.
func (mc *Container) Add(middleware ...func(ctx huma.Context, next func(huma.Context))) *Container {
	mc.Middlewares = append(mc.Middlewares, middleware...)
	return mc
}

// GetAllAndClear отдает накопленные мидлвари и очищает контейнер,
// чтобы следующий хендлер собирал свою цепочку с нуля.
func (mc *Container) GetAllAndClear() huma.Middlewares {
	result := mc.Middlewares
	mc.Middlewares = make(huma.Middlewares, 0)
	return result
}
