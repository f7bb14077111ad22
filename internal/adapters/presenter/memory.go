package presenter

// Memory presenter: keeps every displayed message for test assertions.
type Memory struct {
	Messages []string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (p *Memory) Display(message string) {
	p.Messages = append(p.Messages, message)
}
