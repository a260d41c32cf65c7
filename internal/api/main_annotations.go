// @title           content-genius API
// @version         1.0
// @description     Fills prompt templates with form values and relays them to a language model.
// @BasePath        /api
package api
