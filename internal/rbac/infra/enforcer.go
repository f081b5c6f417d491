package infra

import (
	_ "embed"
	"os"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var defaultModel string

// NewEnforcer loads the model from modelPath, falling back to the embedded
// model when the file is absent.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		if _, err := os.Stat(modelPath); err == nil {
			return casbin.NewEnforcer(modelPath)
		}
	}
	return NewDefaultEnforcer()
}

func NewDefaultEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(defaultModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
