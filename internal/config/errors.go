package config

import "errors"

// ErrMissingSetting indica que uma variável obrigatória para o fluxo não foi definida
var ErrMissingSetting = errors.New("missing required setting")
