package health

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// CheckHealth pings the backing database and reports its state.
func (s *Service) CheckHealth() (map[string]string, error) {
	result := make(map[string]string)

	if err := s.repo.Ping(); err != nil {
		result["database"] = "error"
		return result, err
	}
	result["database"] = "ok"
	return result, nil
}
