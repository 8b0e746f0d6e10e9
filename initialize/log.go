package initialize

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"elite-motors/global"
)

// InitLogger sets up the console logger, optionally teeing to a file.
// Every run gets an instance id so interleaved logs from two consoles
// over the same store can be told apart.
func InitLogger(path string) error {
	var w io.Writer = os.Stderr
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = file
	}
	logger := log.Output(zerolog.ConsoleWriter{Out: w}).With().
		Str("instance", uuid.NewString()).
		Logger()
	log.Logger = logger
	global.Logger = logger
	return nil
}
