package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gproassist/lib/configutil"
	"gproassist/lib/osutil"
	"gproassist/lib/recordstore"
	"gproassist/lib/scrapers/gpro"
	"gproassist/lib/telemetry"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var envFile string
var debugHttp string

var rootCmd = &cobra.Command{
	Use:   "gpro-cli",
	Short: "gpro-cli fetches and archives GPRO race analysis reports.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&envFile, "env", "",
		"dotenv file holding GPRO_USERNAME/GPRO_PASSWORD",
	)
	rootCmd.PersistentFlags().StringVar(
		&debugHttp, "debug-http", "",
		"dump raw HTTP traffic into this directory",
	)
}

func Execute() {
	ctx := osutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "gpro-cli")
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer tel.Shutdown(ctx)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

// credentials resolves the GPRO login from the environment, prompting
// interactively for whatever is missing.
func credentials() (username, password string, err error) {
	if envFile != "" {
		err = godotenv.Load(envFile)
		if err != nil {
			return "", "", err
		}
	} else {
		// a .env in the cwd is optional
		godotenv.Load()
	}

	username = os.Getenv("GPRO_USERNAME")
	if username == "" {
		fmt.Print("username: ")
		_, err = fmt.Scanln(&username)
		if err != nil {
			return "", "", err
		}
	}

	password = os.Getenv("GPRO_PASSWORD")
	if password == "" {
		fmt.Print("password: ")
		var masked []byte
		masked, err = term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", err
		}
		password = string(masked)
	}

	return username, password, nil
}

type clientConfig struct {
	BaseUrl string `json:"base_url"`
}

// clientOptions layers the optional gpro.json5 override (base url for
// mirrors and fixture servers) onto the command line flags.
func clientOptions() (gpro.ClientOptions, error) {
	config, err := configutil.ReadRecursively[clientConfig]("gpro.json5")
	if err != nil && !os.IsNotExist(err) {
		return gpro.ClientOptions{}, err
	}
	return gpro.ClientOptions{
		BaseUrl:  config.BaseUrl,
		DebugDir: debugHttp,
	}, nil
}

func newClient(ctx context.Context) (*gpro.Client, error) {
	username, password, err := credentials()
	if err != nil {
		return nil, err
	}

	opts, err := clientOptions()
	if err != nil {
		return nil, err
	}
	client, err := gpro.NewClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "logged in", "username", username)
	return client, nil
}

func archive(ctx context.Context, path string, results map[gpro.Coordinate]*gpro.RaceAnalysis) error {
	store, err := recordstore.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	records := make([]*gpro.RaceAnalysis, 0, len(results))
	for _, record := range results {
		records = append(records, record)
	}
	err = store.PutAll(ctx, records)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "archived records", "db", path, "count", len(records))
	return nil
}
