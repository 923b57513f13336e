package main

import (
	"codeberg.org/courseteen/server/internal/agent"
	"codeberg.org/courseteen/server/internal/config"
	"codeberg.org/courseteen/server/internal/emotion"
	"codeberg.org/courseteen/server/internal/llm"
	"codeberg.org/courseteen/server/internal/retriever"
	"codeberg.org/courseteen/server/internal/scraper"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds all service clients (LLM, retrieval pipeline, classifier, agent, scraper)
type Services struct {
	Agent      *agent.Agent
	LLM        *llm.CompositeLLM
	Pipeline   *retriever.Pipeline
	Classifier emotion.Classifier
	Scraper    *scraper.Scraper
}
