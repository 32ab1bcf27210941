package main

// @title Workout Sessions API
// @version 1.0
// @description Workout sessions, templates and calendar days for users, trainers and admins.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	Execute()
}
