package delivery

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPIDocument []byte

const indexPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Warehouse API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-delete { color: #f93e3e; }
    </style>
</head>
<body>
    <h1>Warehouse API</h1>
    <p>OpenAPI document: <a href="/api-docs"><code>/api-docs</code></a>. Metrics: <a href="/metrics"><code>/metrics</code></a>.</p>

    <h2>Categories</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/categories">/api/categories</a></code> - List all categories.</li>
        <li><span class="method method-post">POST</span> <code>/api/categories</code> - Create a category. Body: <code>{"name": "string", "description": "string"}</code></li>
        <li><span class="method method-put">PUT</span> <code>/api/categories/{id}</code> - Update a category. Body: <code>{"name": "string", "description": "string"}</code></li>
        <li><span class="method method-delete">DELETE</span> <code>/api/categories/{id}</code> - Delete a category.</li>
        <li><span class="method method-get">GET</span> <code>/api/categories/{id}</code> - Get one category.</li>
    </ul>

    <h2>Products</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/api/products">/api/products</a></code> - List all products with their category embedded.</li>
        <li><span class="method method-post">POST</span> <code>/api/products</code> - Create a product. Body: <code>{"name": "string", "price": number, "category": "ObjectId", "stock": int}</code></li>
        <li><span class="method method-put">PUT</span> <code>/api/products/{id}</code> - Update a product. Body requires <code>name</code> and <code>price</code>; <code>category</code> and <code>stock</code> are optional.</li>
        <li><span class="method method-delete">DELETE</span> <code>/api/products/{id}</code> - Delete a product.</li>
        <li><span class="method method-get">GET</span> <code>/api/products/{id}</code> - Get one product with its category embedded.</li>
    </ul>
</body>
</html>
`

func serveIndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPageContent))
}

func serveAPIDocs(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", openAPIDocument)
}
