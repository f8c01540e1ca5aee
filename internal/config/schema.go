package config

// Config is the content of configs/aoc.yaml.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	InputsDir string `yaml:"inputs_dir"`
	Format    string `yaml:"format"`
	Days      []Day  `yaml:"days"`
}

// Day binds a puzzle day to its input and, optionally, a sample with the
// answers it must produce.
type Day struct {
	Day    int     `yaml:"day"`
	Input  string  `yaml:"input"`
	Sample *Sample `yaml:"sample"`
}

type Sample struct {
	Input string `yaml:"input"`
	Part1 int    `yaml:"part1"`
	Part2 int    `yaml:"part2"`
}
