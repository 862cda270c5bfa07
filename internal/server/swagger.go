package server

//go:generate swag init -g internal/server/server.go -o docs

// @title Screenshot Control API
// @version 0.1
// @description Web screenshot service with multiple presets and formats.
// @contact.name Screenshot Control Maintainers
// @contact.url https://github.com/infractura/screenshot-control
// @BasePath /
