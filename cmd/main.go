// cmd/main.go
package main

import (
	"github.com/OndrejKutil/budgeting-dashboard-sub000/app"
)

func main() {
	app.Run()
}
