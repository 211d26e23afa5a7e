// Command snapbridge-call sends one command to a running snapbridge-host and prints the reply
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"snapbridge/internal/platform/config"
	"snapbridge/internal/platform/logger"
	"snapbridge/internal/services/bridge/client"
	dom "snapbridge/internal/services/bridge/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func main() {
	_ = godotenv.Load()
	cfg := config.New().Prefix("CALL_")
	l := logger.Get()

	var (
		fAddr    = flag.String("addr", cfg.MayString("ADDR", "http://127.0.0.1:4000"), "host base url")
		fToken   = flag.String("token", cfg.MayString("TOKEN", ""), "host bearer token")
		fMethod  = flag.String("method", "", "command name, e.g. getUser")
		fArgs    = flag.String("args", "", "command arguments as a JSON object")
		fArgFile = flag.String("args-file", "", "command arguments from a YAML or JSON file")
		fID      = flag.String("id", "", "command id for correlation")
		fList    = flag.Bool("list", false, "list recognised methods and exit")
		fTimeout = flag.Duration("timeout", cfg.MayDuration("TIMEOUT", 45*time.Second), "overall deadline")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *fTimeout)
	defer cancel()
	c := client.New(*fAddr, *fToken)

	if *fList {
		methods, err := c.Methods(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("list methods failed")
		}
		for _, m := range methods {
			fmt.Println(m)
		}
		return
	}

	if *fMethod == "" {
		flag.Usage()
		os.Exit(2)
	}
	payload, err := arguments(*fArgs, *fArgFile)
	if err != nil {
		l.Fatal().Err(err).Msg("bad arguments")
	}

	w, err := c.Invoke(ctx, dom.Command{ID: *fID, Name: *fMethod, Payload: payload})
	if err != nil {
		l.Fatal().Err(err).Str("method", *fMethod).Msg("invoke failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(w)
	if w.Failed() {
		os.Exit(1)
	}
}

// arguments reads the payload from -args or -args-file; the file may be YAML or JSON
func arguments(inline, file string) (map[string]any, error) {
	var out map[string]any
	switch {
	case inline != "" && file != "":
		return nil, fmt.Errorf("use -args or -args-file, not both")
	case inline != "":
		if err := json.Unmarshal([]byte(inline), &out); err != nil {
			return nil, fmt.Errorf("parse -args: %w", err)
		}
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
	}
	return out, nil
}
