package routes_test

import (
	"context"
	"slices"

	"github.com/dasdy/gamepedia/catalog"
	"github.com/dasdy/gamepedia/model"
	"github.com/dasdy/gamepedia/web/routes"
)

var (
	dkCountry  = model.CatalogItem{ID: 1, ImageRef: "https://example.com/dk2.jpg", Label: "Donkey Kong Country 2", Genre: "Platformers"}
	marioWorld = model.CatalogItem{ID: 2, ImageRef: "https://example.com/smw.png", Label: "Super Mario World", Genre: "Platformers"}
	zelda      = model.CatalogItem{ID: 3, ImageRef: "https://via.placeholder.com/150", Label: "The Legend of Zelda", Genre: "RPG"}
	megaManX   = model.CatalogItem{ID: 4, ImageRef: "https://example.com/mmx.png", Label: "Mega Man X", Genre: "Shooter"}
)

// SimpleStorageMock is a simple manual mock implementation of the Storage interface
type SimpleStorageMock struct {
	ReturnStats map[int]model.GameStats
	ReturnError error
	CallCount   int
	Impressions [][]int
	Opens       []int
	RecordError error
}

func (m *SimpleStorageMock) GatherAll(_ context.Context) (map[int]model.GameStats, error) {
	m.CallCount++
	return m.ReturnStats, m.ReturnError
}

func (m *SimpleStorageMock) RecordImpressions(_ context.Context, ids []int) error {
	m.Impressions = append(m.Impressions, slices.Clone(ids))
	return m.RecordError
}

func (m *SimpleStorageMock) RecordOpen(_ context.Context, id int) error {
	m.Opens = append(m.Opens, id)
	return m.RecordError
}

// Implement Close method required by db.Storage interface
func (m *SimpleStorageMock) Close() {
	// No-op for testing
}

// SelectorMock returns a fixed subset and remembers what it was asked for
type SelectorMock struct {
	Return    []model.CatalogItem
	Err       error
	CallCount int
	LastItems []model.CatalogItem
	LastK     int
}

func (m *SelectorMock) Pick(items []model.CatalogItem, k int) ([]model.CatalogItem, error) {
	m.CallCount++
	m.LastItems = items
	m.LastK = k

	if m.Err != nil {
		return nil, m.Err
	}

	if m.Return == nil {
		return items[:k], nil
	}

	return m.Return, nil
}

func createTestCatalog() *catalog.Catalog {
	c, err := catalog.New([]model.CatalogItem{dkCountry, marioWorld, zelda, megaManX})
	if err != nil {
		panic(err)
	}

	return c
}

// MockServerHandler helper struct for testing
type MockServerHandler struct {
	*routes.ServerHandler
	MockStorage  *SimpleStorageMock
	MockSelector *SelectorMock
}

// setupMockServerHandler creates a handler over the four test games with mocked collaborators.
func setupMockServerHandler() MockServerHandler {
	mockStorage := &SimpleStorageMock{}
	mockSelector := &SelectorMock{Return: []model.CatalogItem{marioWorld, zelda}}

	return MockServerHandler{
		ServerHandler: routes.NewServerHandler(createTestCatalog(), mockSelector, mockStorage, nil),
		MockStorage:   mockStorage,
		MockSelector:  mockSelector,
	}
}
