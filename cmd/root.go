package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Arma75/dtogen/internal/model"
)

var (
	configFiles    []string
	level, version string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "dtogen",
	Short:        "generate Java DTO classes from table schemas",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "warn", "log level (debug, info, warn, error, debug+1, etc)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")

	pf := rootCmd.PersistentFlags()
	pf.String("strategy", "direct", "emission strategy (direct, template)")
	pf.String("team", "", "team package segment")
	pf.String("project", "", "project package segment")
	pf.String("author", "", "@author written into doc comments")
	pf.String("postfix", "", "suffix appended to DTO class names")
	pf.String("type", "", "template rendering mode (search, save, response)")
	pf.String("locale", "", "language of generated comments (ko, en)")
	pf.Bool("comments", false, "write Javadoc comments")
	pf.Bool("lombok", false, "use Lombok annotations instead of accessors")
	pf.Bool("swagger", false, "add @Schema annotations")
	pf.Bool("date-range", false, "add Start/End fields next to date columns")
	pf.Bool("singularize", false, "singularize table names for class names")

	for key, name := range projectFlags {
		_ = viper.BindPFlag(key, pf.Lookup(name))
	}
	_ = viper.BindPFlag("strategy", pf.Lookup("strategy"))
}

// projectFlags maps config keys under "project" to the persistent flag that
// overrides them. Keys match model.Project's mapstructure tags.
var projectFlags = map[string]string{
	"project.team_name":      "team",
	"project.project_name":   "project",
	"project.author":         "author",
	"project.dto_postfix":    "postfix",
	"project.type":           "type",
	"project.locale":         "locale",
	"project.write_comment":  "comments",
	"project.use_lombok":     "lombok",
	"project.use_swagger":    "swagger",
	"project.use_date_range": "date-range",
	"project.singularize":    "singularize",
}

// projectOverrides turns every project setting given by flag, environment or
// config file into an option applied over the schema document's own settings.
func projectOverrides() ([]model.ProjectOption, error) {
	var opts []model.ProjectOption
	str := func(key string, fn func(string) model.ProjectOption) {
		if viper.IsSet(key) {
			opts = append(opts, fn(viper.GetString(key)))
		}
	}
	flag := func(key string, set func(*model.Project, bool)) {
		if viper.IsSet(key) {
			v := viper.GetBool(key)
			opts = append(opts, func(p *model.Project) { set(p, v) })
		}
	}

	str("project.team_name", model.WithTeam)
	str("project.project_name", model.WithProjectName)
	str("project.author", model.WithAuthor)
	str("project.dto_postfix", model.WithPostfix)
	str("project.locale", func(s string) model.ProjectOption { return model.WithLocale(model.ParseLocale(s)) })
	if viper.IsSet("project.type") {
		kind, err := model.ParseRequestKind(viper.GetString("project.type"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithRequestKind(kind))
	}
	flag("project.write_comment", func(p *model.Project, v bool) { p.WriteComment = v })
	flag("project.use_lombok", func(p *model.Project, v bool) { p.UseLombok = v })
	flag("project.use_swagger", func(p *model.Project, v bool) { p.UseSwagger = v })
	flag("project.use_date_range", func(p *model.Project, v bool) { p.UseDateRange = v })
	flag("project.singularize", func(p *model.Project, v bool) { p.Singularize = v })
	return opts, nil
}

func parseLevel(s string) slog.Level {
	var ll slog.Level
	if err := (&ll).UnmarshalText([]byte(s)); err != nil {
		if strings.EqualFold(s, "trace") {
			return slog.Level(-8)
		}
		panic("invalid log level: " + s)
	}
	return ll
}

func newLogger(ll slog.Level) *slog.Logger {
	// stdout carries generated source
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       ll,
		ReplaceAttr: nil,
	}))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	l := newLogger(parseLevel(level))
	slog.SetDefault(l)

	if len(configFiles) > 0 {
		// Use config file from the flag.
		viper.SetConfigFile(configFiles[0])
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// DTOGEN_PROJECT_TEAM_NAME, DTOGEN_STRATEGY, ...
	viper.SetEnvPrefix("dtogen")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		l.With("config", viper.ConfigFileUsed()).Info("using config file(s)")
	} else {
		l.With("error", err, "config", viper.ConfigFileUsed()).Debug("unable to use config file(s)")
	}
	if len(configFiles) > 1 {
		for _, file := range configFiles[1:] {
			if configBytes, err := os.ReadFile(file); err == nil {
				if err = viper.MergeConfig(bytes.NewReader(configBytes)); err != nil {
					l.With("error", err, "file", file).Warn("failed to merge config file")
				} else {
					l.With("file", file).Info("merged config file")
				}
			}
		}
	}
	if len(version) > 0 {
		viper.Set("version", version)
	}

	// common.log.level applies only when --level was left at its default
	if llstr := viper.GetString("common.log.level"); llstr != "" && !rootCmd.PersistentFlags().Changed("level") {
		slog.SetDefault(newLogger(parseLevel(llstr)))
	}
}
