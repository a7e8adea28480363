package ports

import "github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"

type Catalog interface {
	List() []*domain.Bootcamp
	Get(id int) (*domain.Bootcamp, error)
}
