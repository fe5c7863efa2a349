package http

import "ai-todo/internal/model"

// priorityStyle is how a priority is shown to the user.
type priorityStyle struct {
	Label string
	Color string
}

var priorityStyles = map[model.Priority]priorityStyle{
	model.PriorityLow:    {Label: "低", Color: "#4CAF50"},
	model.PriorityMedium: {Label: "中", Color: "#FFC107"},
	model.PriorityHigh:   {Label: "高", Color: "#FF9800"},
	model.PriorityUrgent: {Label: "紧急", Color: "#F44336"},
}

func styleOf(p model.Priority) priorityStyle {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return priorityStyles[model.PriorityMedium]
}
