package internal

import (
	_ "embed"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

//go:embed assets/playground.html
var playgroundPage []byte

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Server serves the schema over HTTP: POST /graphql for queries and
// mutations, GET / for the bundled playground page.
type Server struct {
	schema graphql.Schema
	engine *gin.Engine
}

func NewServer(store *Store) (*Server, error) {
	schema, err := NewSchema(store)
	if err != nil {
		return nil, WrapError(err)
	}

	s := &Server{
		schema: schema,
		engine: gin.Default(),
	}

	s.engine.GET("/", s.playground)
	s.engine.GET("/health", s.health)
	s.engine.POST("/graphql", s.graphql)

	return s, nil
}

// Handler exposes the underlying engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	log.Printf("graphql server listening on %s", addr)
	if err := s.engine.Run(addr); err != nil {
		return WrapError(err)
	}
	return nil
}

func (s *Server) graphql(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": err.Error()}}})
		return
	}

	// graphql.Do never fails hard: parse and validation problems come
	// back in the Errors field and still serialize as a 200 response,
	// matching how graphql clients expect to receive them.
	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})

	c.JSON(http.StatusOK, result)
}

func (s *Server) playground(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", playgroundPage)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
