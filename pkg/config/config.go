package config

// DefaultDataFile is the fixed name of the accounts file.
const DefaultDataFile = "Accounts.txt"

// Log configures the slog handler. Variables are prefixed with LOG_.
type Log struct {
	Level        int    `envconfig:"LEVEL" default:"0"`
	Format       string `envconfig:"FORMAT" default:"text"`
	TimeFormat   string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix       string `envconfig:"PREFIX" default:"[bank]"`
	ReportCaller bool   `envconfig:"REPORT_CALLER" default:"false"`
}

// Storage is not read from the environment: the data file name is a fixed default.
type Storage struct {
	DataFile string
}

// App is the configuration for one run of the program.
type App struct {
	Env     string   `envconfig:"APP_ENV" default:"development"`
	Log     *Log     `envconfig:"LOG"`
	Storage *Storage `ignored:"true"`
}
