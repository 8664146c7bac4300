package content

var saintTable = []Saint{
	{ID: 1, Name: "Saint Carlo Acutis", Image: "/images/saints/st.carlo.jpg"},
	{ID: 2, Name: "Saint Francisco Marto", Image: "/images/saints/st.francisco.jpg"},
	{ID: 3, Name: "Saint Jacinta Marto", Image: "/images/saints/st.jacinta.jpg"},
	{ID: 4, Name: "Saint Maria Goretti", Image: "/images/saints/st.mariagoretti.jpg"},
	{ID: 5, Name: "Saint Pedro Calungsod", Image: "/images/saints/st.pedro.jpg"},
	{ID: 6, Name: "Saint Rose of Lima", Image: "/images/saints/st.rose.jpg"},
}
