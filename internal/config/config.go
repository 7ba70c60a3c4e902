package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Flag is a boolean that is only true for the case-insensitive value "true".
// Anything else, including "1" or "yes", reads as false.
type Flag bool

func (f *Flag) UnmarshalText(text []byte) error {
	*f = Flag(strings.EqualFold(string(text), "true"))
	return nil
}

type GeneratorConfig struct {
	RequiredTags string `env:"REQUIRED_TAGS"`
	ActionPath   string `env:"ACTION_PATH" envDefault:"."`
}

type ParserConfig struct {
	TerraformDir string `env:"TERRAFORM_DIR" envDefault:"."`
	SoftFail     Flag   `env:"SOFT_FAIL" envDefault:"false"`
	OutputFile   string `env:"GITHUB_OUTPUT"`
	StepSummary  string `env:"GITHUB_STEP_SUMMARY"`

	Comment CommentConfig
}

type CommentConfig struct {
	Enabled    Flag   `env:"COMMENT_ON_PR" envDefault:"false"`
	Token      string `env:"GITHUB_TOKEN"`
	Repository string `env:"GITHUB_REPOSITORY"`
	PRNumber   int    `env:"PR_NUMBER" envDefault:"0"`
	HeadRef    string `env:"GITHUB_HEAD_REF"`
}

// Owner and Repo split GITHUB_REPOSITORY ("owner/repo").
func (c CommentConfig) Owner() string {
	owner, _, _ := strings.Cut(c.Repository, "/")
	return owner
}

func (c CommentConfig) Repo() string {
	_, repo, _ := strings.Cut(c.Repository, "/")
	return repo
}

func LoadGenerator() (*GeneratorConfig, error) {
	var cfg GeneratorConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadParser() (*ParserConfig, error) {
	var cfg ParserConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
