package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lachapa-pdv/catalog"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

type CatalogController struct {
	Catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{Catalog: cat}
}

// GetProducts -> GET /products?category=<id>&q=<name>
func (cc *CatalogController) GetProducts(c *gin.Context) {
	products := cc.Catalog.Filter(c.Query("category"), c.Query("q"))
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

func (cc *CatalogController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid product ID"))
		return
	}

	product, err := cc.Catalog.Find(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

func (cc *CatalogController) GetCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of categories", cc.Catalog.Categories())
}
