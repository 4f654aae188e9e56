package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Load читает env файл и флаги командной строки. Переменные окружения процесса приоритетнее файла,
// отсутствие файла не ошибка: в контейнере конфиг приходит только через окружение.
//
// Флаги:
//
//	-env-file путь к env файлу
//	-port     перекрывает PORT
func Load(flags *flag.FlagSet, args []string) error {
	var envFile, portFlag string
	flags.StringVar(&envFile, "env-file", defaultEnvFile, "Path to env file")
	flags.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")

	err := flags.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	err = godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
