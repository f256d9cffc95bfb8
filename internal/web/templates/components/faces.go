package components

var faces = [...]string{"⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

func face(value int) string {
	if value < 1 || value > len(faces) {
		return "?"
	}
	return faces[value-1]
}
