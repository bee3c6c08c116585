package server

import (
	"Wayfarer/handler"
)

type Handlers struct {
	Progress *handler.Progress
	Points   *handler.Point
}
