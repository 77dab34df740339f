package main

// @title Corona Stats API
// @version 1.0
// @description COVID-19 figures per country and per Israeli city, reformatted from public upstream APIs
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:3003
// @BasePath /
