package handler

import "github.com/adminhub/user-console/internal/core/domain"

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAddressResponse(a *domain.Address) addressResponse {
	return addressResponse{
		ID:           a.ID,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Country:      a.Country,
		UserID:       a.UserID,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// mapPage converts a domain page into its transport equivalent, reusing the
// already-computed pagination metadata.
func mapPage[T, U any](p *domain.Page[T], f func(*T) U) domain.Page[U] {
	content := make([]U, 0, len(p.Content))
	for i := range p.Content {
		content = append(content, f(&p.Content[i]))
	}
	return domain.Page[U]{
		Content:       content,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		IsFirst:       p.IsFirst,
		IsLast:        p.IsLast,
	}
}
