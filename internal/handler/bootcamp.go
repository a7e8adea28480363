package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/handler/dto"
)

func (h *Handler) ListBootcamps(c *ginext.Context) {
	bootcamps := h.catalog.List()

	resp := make([]dto.BootcampResponse, 0, len(bootcamps))
	for _, b := range bootcamps {
		resp = append(resp, dto.ToBootcampResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBootcamp(c *ginext.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil && id <= 0 {
		err = fmt.Errorf("bootcamp id %d out of range", id)
	}
	if err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.catalog.Get(id)
	if err != nil {
		h.handleError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToBootcampResponse(b))
}
