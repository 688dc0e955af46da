package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

const sentryFlushTimeout = 5 * time.Second

func setDefaults() {
	viper.SetDefault("api.url", "http://localhost:8080")
	viper.SetDefault("identity.url", "https://identitytoolkit.googleapis.com")
	viper.SetDefault("identity.api_key", "")
	viper.SetDefault("credentials.env_file", "../.env")
	viper.SetDefault("http.timeout", time.Duration(0))

	viper.SetDefault("drone.images_dir", "./earthquake-images")
	viper.SetDefault("drone.interval", 2000)
	viper.SetDefault("drone.neighborhood", "Unknown")
	viper.SetDefault("drone.actor", "drone-simulator")
	viper.SetDefault("drone.role", "drone")

	viper.SetDefault("report.actor", "mock-reports-generator")
	viper.SetDefault("report.role", "system")
	viper.SetDefault("report.delay", 200*time.Millisecond)
	viper.SetDefault("report.lang", "tr")

	viper.SetDefault("simulation.seed", 0)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.max_size_mb", 100)
}

// LoadConfig reads the yaml config file when present and lets HADES_* environment
// variables override any key, e.g. HADES_API_URL for api.url.
func LoadConfig(file string) {
	setDefaults()

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("hades")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func InitLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	var out io.Writer = os.Stdout
	if file := viper.GetString("log.file"); file != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename: file,
			MaxSize:  viper.GetInt("log.max_size_mb"),
		})
	}
	log.SetOutput(out)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func InitSentry() {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")
}

// ReportFatal sends err to sentry and waits for delivery before the process exits
func ReportFatal(err error) {
	sentry.CaptureException(err)
	sentry.Flush(sentryFlushTimeout)
}

// NewHTTPClient returns the client shared by the identity and hades clients.
// A zero http.timeout leaves requests without a deadline.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: viper.GetDuration("http.timeout"),
	}
}
