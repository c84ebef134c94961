package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries request-scoped identity through usecases.
type Scope struct {
	UserID string
}
