package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	// registers the generated OpenAPI document with swag
	_ "converterservice/internal/api/docs"
)

const swaggerDocPath = "/swagger/doc.json"

// SwaggerUIHandler serves the Swagger UI and the registered document under /swagger/
func SwaggerUIHandler() http.HandlerFunc {
	return httpSwagger.Handler(
		httpSwagger.URL(swaggerDocPath),
		httpSwagger.DocExpansion("list"),
	)
}

// OpenAPISpecHandler redirects to the swagger spec JSON
func OpenAPISpecHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, swaggerDocPath, http.StatusTemporaryRedirect)
	}
}
