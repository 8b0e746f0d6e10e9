package global

import (
	"github.com/rs/zerolog"

	"elite-motors/app/store"
	"elite-motors/config"
)

var (
	Config *config.Config
	Logger zerolog.Logger
	KV     store.KV
)
