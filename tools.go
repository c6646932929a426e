//go:build tools

// Dependencias de herramientas del módulo. swag genera docs/swagger.json a
// partir de las anotaciones de los handlers:
//
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/api/main.go -o docs --ot json
package tools

import _ "github.com/swaggo/swag"
