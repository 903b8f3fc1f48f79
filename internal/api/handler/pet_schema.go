package handler

// --- Request types for the pet catalog ---

type createPetRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=64"`
	Species     string `json:"species"     validate:"required,max=64"`
	Breed       string `json:"breed"       validate:"max=64"`
	Age         int    `json:"age"         validate:"gte=0"`
	Price       int64  `json:"price"       validate:"required,gt=0"`
	Description string `json:"description" validate:"max=512"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}

type updatePetRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=64"`
	Species     *string `json:"species"     validate:"omitempty,max=64"`
	Breed       *string `json:"breed"       validate:"omitempty,max=64"`
	Age         *int    `json:"age"         validate:"omitempty,gte=0"`
	Price       *int64  `json:"price"       validate:"omitempty,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=512"`
	ImageURL    *string `json:"image_url"   validate:"omitempty,url"`
}

type setStatusRequest struct {
	Status *bool `json:"status" validate:"required"`
}

type deletePetsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

// paginationResponse echoes the list paging state back to the client.
type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
