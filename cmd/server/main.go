package main

import "clientdesk/internal/app"

// @title           clientdesk
// @description     Interface web de consulta e cadastro de clientes e recibos.
// @version         1.0
// @BasePath        /
func main() {
	app.Run()
}
