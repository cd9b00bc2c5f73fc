// main.go
//
// Planning portal ticket to job document delivery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of planning-portal.
// planning-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// planning-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with planning-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/planning-portal/internal/devstack"
	"github.com/localnerve/planning-portal/internal/logging"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show usage")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run the planning-portal MariaDB and Redis containers with the environment variables from the .env file.
Prints the variables that point the server at them, then waits for a signal.

Usage:

devstack [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file (DB_IMAGE, REDIS_IMAGE, DB_DATABASE, DB_USER, DB_PASSWORD, DB_ROOT_PASSWORD)

example
  devstack -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	logger := logging.New("info", "console")
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	stack, err := devstack.Start(ctx, devstack.OptionsFromEnv(), logger)
	cancel()
	if err != nil {
		log.Fatalf("Failed to start containers: %v\n", err)
	}

	for _, line := range stack.EnvLines() {
		fmt.Println(line)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating containers...\n", sig)
	if err := stack.Terminate(context.Background()); err != nil {
		log.Printf("%v\n", err)
		os.Exit(1)
	}
}
