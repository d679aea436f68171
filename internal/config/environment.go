package config

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

func (e Environment) IsProduction() bool {
	return e == EnvironmentProduction
}
