// Command portfolio runs the portfolio site and its admin panel.
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/haemonga/portfolio/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
