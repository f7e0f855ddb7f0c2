package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// URLPrefix базовый адрес для коротких ссылок. Пустое значение означает,
// что адрес берётся из входящего запроса
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if value == "" {
		*p = ""
		return nil
	}

	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/") + "/")

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

func (p *URLPrefix) UnmarshalYAML(value *yaml.Node) error {
	return p.Set(value.Value)
}
