package server

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// InputValidator is the shared validator instance used for struct-level
// validation of bound request and response payloads. One instance is
// enough: validator.Validate caches struct metadata and is safe for
// concurrent use.
var (
	InputValidator *validator.Validate
	once           sync.Once
)

// InitValidator sets the shared validator instance ONCE. Call it at
// startup to register custom tags; later calls are no-ops.
func InitValidator(v *validator.Validate) {
	once.Do(func() {
		zap.L().Debug("Initializing request validator")
		InputValidator = v
	})
}

// initDefaultValidator installs a plain validator when none was provided.
func initDefaultValidator() {
	InitValidator(validator.New())
}
