package content

// quizTable is the full emoji Bible quiz pool. Rounds draw a random
// subset with freshly shuffled options, so label positions here are
// only the canonical ordering.
var quizTable = []QuizItem{
	{
		ID:       1,
		Emojis:   []string{"🌊", "❗", "➡️", "🚶‍♂️"},
		Question: "What is the story?",
		Options: []Option{
			{Label: "A", Text: "Jonah and the Whale"},
			{Label: "B", Text: "Moses parts the Red Sea"},
			{Label: "C", Text: "Noah's Ark"},
			{Label: "D", Text: "Jesus Walks on Water"},
		},
		CorrectLabel: "B",
	},
	{
		ID:       2,
		Emojis:   []string{"🌍", "🌳", "🍎", "🐍"},
		Question: "What is the story?",
		Options: []Option{
			{Label: "A", Text: "The Garden of Eden"},
			{Label: "B", Text: "The Tower of Babel"},
			{Label: "C", Text: "The Flood"},
			{Label: "D", Text: "The Exodus"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       3,
		Emojis:   []string{"👦", "🪨", "🎯", "👹"},
		Question: "What is the story?",
		Options: []Option{
			{Label: "A", Text: "David and Goliath"},
			{Label: "B", Text: "Samson and Delilah"},
			{Label: "C", Text: "Daniel in the Lion's Den"},
			{Label: "D", Text: "Joshua and the Battle of Jericho"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       4,
		Emojis:   []string{"🍞", "🐟", "👥", "✋"},
		Question: "What is the story?",
		Options: []Option{
			{Label: "A", Text: "The Last Supper"},
			{Label: "B", Text: "Feeding of the 5000"},
			{Label: "C", Text: "The Wedding at Cana"},
			{Label: "D", Text: "The Parable of the Loaves"},
		},
		CorrectLabel: "B",
	},
	{
		ID:       5,
		Emojis:   []string{"🚢", "🌊", "🐋", "🙏"},
		Question: "What is the story?",
		Options: []Option{
			{Label: "A", Text: "Jonah and the Whale"},
			{Label: "B", Text: "Noah's Ark"},
			{Label: "C", Text: "Paul's Shipwreck"},
			{Label: "D", Text: "Jesus Calms the Storm"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       6,
		Emojis:   []string{"🏠", "👨‍👩‍👧‍👦", "⭐", "👶"},
		Question: "What is the story?",
		Options: []Option{
			{Label: "A", Text: "The Birth of Jesus"},
			{Label: "B", Text: "The Prodigal Son"},
			{Label: "C", Text: "The Good Samaritan"},
			{Label: "D", Text: "The Nativity"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       7,
		Emojis:   []string{"🌟", "👶", "🎁", "🎁"},
		Question: "The Magi brought which three gifts to the Christ child?",
		Options: []Option{
			{Label: "A", Text: "Gold, Frankincense, and Myrrh"},
			{Label: "B", Text: "Silver, Oil, and Incense"},
			{Label: "C", Text: "Jewels, Silk, and Wine"},
			{Label: "D", Text: "Spices, Cedar, and Coins"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       8,
		Emojis:   []string{"🎣", "🚶‍♂️", "➡️", "🧍‍♂️"},
		Question: "Which event involves Jesus telling fishermen to become \"fishers of men\"?",
		Options: []Option{
			{Label: "A", Text: "Calling of the first disciples"},
			{Label: "B", Text: "Feeding of the 5,000"},
			{Label: "C", Text: "Sermon on the Mount"},
			{Label: "D", Text: "Parable of the Sower"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       9,
		Emojis:   []string{"🍇", "💧", "🍷", "🍉"},
		Question: "Where did Jesus perform His first miracle, changing water into wine?",
		Options: []Option{
			{Label: "A", Text: "Wedding at Cana"},
			{Label: "B", Text: "Healing the paralytic"},
			{Label: "C", Text: "Raising of Lazarus"},
			{Label: "D", Text: "Last Supper"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       10,
		Emojis:   []string{"🥖", "🐟", "5000", "👤"},
		Question: "The miracle of multiplying 5 loaves and 2 fish fed approximately how many people?",
		Options: []Option{
			{Label: "A", Text: "Feeding of the 5,000"},
			{Label: "B", Text: "Loaves and Fishes for 4,000"},
			{Label: "C", Text: "Miraculous Catch of Fish"},
			{Label: "D", Text: "Bread from Heaven"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       11,
		Emojis:   []string{"🌩️", "🌊", "🛥️", "🛌"},
		Question: "What miracle did Jesus perform after the disciples panicked on the sea?",
		Options: []Option{
			{Label: "A", Text: "Jesus calming the storm"},
			{Label: "B", Text: "Walking on Water"},
			{Label: "C", Text: "The Centurion's Servant"},
			{Label: "D", Text: "Cleansing the Temple"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       12,
		Emojis:   []string{"💰", "🌳", "📉"},
		Question: "Who was the short tax collector who climbed a sycamore tree to see Jesus?",
		Options: []Option{
			{Label: "A", Text: "Zacchaeus the tax collector"},
			{Label: "B", Text: "Matthew the Tax Collector"},
			{Label: "C", Text: "Judas Iscariot"},
			{Label: "D", Text: "Simon the Leper"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       13,
		Emojis:   []string{"👨‍⚖️", "🪓", "🌳"},
		Question: "Who baptized Jesus and proclaimed, \"Prepare the way of the Lord?\"",
		Options: []Option{
			{Label: "A", Text: "John the Baptist"},
			{Label: "B", Text: "Peter"},
			{Label: "C", Text: "Elijah"},
			{Label: "D", Text: "Elisha"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       14,
		Emojis:   []string{"👂", "🤫", "🗣️"},
		Question: "Which healing involves Jesus placing his fingers in a man's ears and saying \"Ephphatha?\"",
		Options: []Option{
			{Label: "A", Text: "Healing the deaf and mute man"},
			{Label: "B", Text: "Healing a blind man"},
			{Label: "C", Text: "Raising of Jairus' Daughter"},
			{Label: "D", Text: "Casting out demons"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       15,
		Emojis:   []string{"⛰️", "📜", "🙏"},
		Question: "Where did Jesus deliver the Beatitudes?",
		Options: []Option{
			{Label: "A", Text: "Sermon on the Mount"},
			{Label: "B", Text: "Transfiguration"},
			{Label: "C", Text: "Prayer in Gethsemane"},
			{Label: "D", Text: "Calling of Moses"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       16,
		Emojis:   []string{"🐑", "🐑", "گمشده"},
		Question: "Which parable illustrates God's pursuit of a single soul that has strayed?",
		Options: []Option{
			{Label: "A", Text: "Parable of the Lost Sheep"},
			{Label: "B", Text: "Parable of the Unmerciful Servant"},
			{Label: "C", Text: "Parable of the Sower"},
			{Label: "D", Text: "Parable of the Rich Fool"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       17,
		Emojis:   []string{"🛢️", "💰", "💔", "🏡"},
		Question: "In which parable does a son demand his inheritance, waste it, and return home poor?",
		Options: []Option{
			{Label: "A", Text: "Parable of the Prodigal Son"},
			{Label: "B", Text: "Parable of the Ten Talents"},
			{Label: "C", Text: "Parable of the Rich Fool"},
			{Label: "D", Text: "Parable of the Good Shepherd"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       18,
		Emojis:   []string{"✝️", "👑", "🌵"},
		Question: "Which event symbolizes the humiliation of Jesus before the crucifixion?",
		Options: []Option{
			{Label: "A", Text: "The Crowning with Thorns"},
			{Label: "B", Text: "The Scourging"},
			{Label: "C", Text: "The Mocking of Jesus"},
			{Label: "D", Text: "The Crucifixion"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       19,
		Emojis:   []string{"🤝", "🦶", "🧼"},
		Question: "What humble act did Jesus perform for His disciples at the Last Supper?",
		Options: []Option{
			{Label: "A", Text: "The Washing of the Disciples' Feet"},
			{Label: "B", Text: "The Last Supper"},
			{Label: "C", Text: "The Ascension"},
			{Label: "D", Text: "The Anointing at Bethany"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       20,
		Emojis:   []string{"🪦", "🚪", "☀️"},
		Question: "Which event is the foundation of the Christian faith, proving Jesus' divinity?",
		Options: []Option{
			{Label: "A", Text: "The Resurrection"},
			{Label: "B", Text: "The Ascension"},
			{Label: "C", Text: "The Agony in the Garden"},
			{Label: "D", Text: "Pentecost"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       21,
		Emojis:   []string{"😇", "✉️", "👧", "🤰"},
		Question: "The Angel Gabriel's announcement to Mary is known as the...?",
		Options: []Option{
			{Label: "A", Text: "The Annunciation"},
			{Label: "B", Text: "The Visitation"},
			{Label: "C", Text: "The Presentation"},
			{Label: "D", Text: "The Nativity"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       22,
		Emojis:   []string{"🧱", "🏠", "🌬️", "🌊"},
		Question: "This parable compares two types of builders based on what their house is built upon.",
		Options: []Option{
			{Label: "A", Text: "Parable of the Wise and Foolish Builders"},
			{Label: "B", Text: "Parable of the Sower"},
			{Label: "C", Text: "Parable of the Talents"},
			{Label: "D", Text: "Parable of the Yeast"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       23,
		Emojis:   []string{"🤒", "🛌", "उठो", "!"},
		Question: "Jesus commanded the man to \"Take up your mat and go home\" after what healing?",
		Options: []Option{
			{Label: "A", Text: "Healing of the paralytic"},
			{Label: "B", Text: "Healing of the man born blind"},
			{Label: "C", Text: "Healing of the lepers"},
			{Label: "D", Text: "Raising of Lazarus"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       24,
		Emojis:   []string{"🚪", "🚪", "🚪", "🙏"},
		Question: "Jesus said, \"______, and it will be given to you; seek, and you will find.\"",
		Options: []Option{
			{Label: "A", Text: "Ask, and it will be given to you"},
			{Label: "B", Text: "Judge not, lest you be judged"},
			{Label: "C", Text: "Love your enemies"},
			{Label: "D", Text: "Do not worry"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       25,
		Emojis:   []string{"🕊️", "🔥", "🌬️"},
		Question: "The descent of the Holy Spirit upon the Apostles is celebrated on which feast?",
		Options: []Option{
			{Label: "A", Text: "Pentecost"},
			{Label: "B", Text: "The Ascension"},
			{Label: "C", Text: "The Rapture"},
			{Label: "D", Text: "Jesus' Baptism"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       26,
		Emojis:   []string{"🌳", "🔪", "🌿", "✝️"},
		Question: "Which apostle betrayed Jesus for thirty pieces of silver?",
		Options: []Option{
			{Label: "A", Text: "Judas Iscariot"},
			{Label: "B", Text: "Caiaphas"},
			{Label: "C", Text: "Pontius Pilate"},
			{Label: "D", Text: "Simon Peter"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       27,
		Emojis:   []string{"🛣️", "🚑", "🤝"},
		Question: "Which parable teaches us to love and care for strangers, even our enemies?",
		Options: []Option{
			{Label: "A", Text: "Parable of the Good Samaritan"},
			{Label: "B", Text: "Parable of the Ten Virgins"},
			{Label: "C", Text: "Parable of the Rich Man and Lazarus"},
			{Label: "D", Text: "Parable of the Vineyard"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       28,
		Emojis:   []string{"💰", "🌍", "🗑️"},
		Question: "Jesus advises storing up this kind of wealth, where moths and rust cannot destroy.",
		Options: []Option{
			{Label: "A", Text: "Treasure in Heaven"},
			{Label: "B", Text: "Kingdom of God"},
			{Label: "C", Text: "Pearl of Great Price"},
			{Label: "D", Text: "The Widow's Mite"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       29,
		Emojis:   []string{"🌅", "🐟", "🍖", "🔥"},
		Question: "What did the disciples share with the Risen Christ on the shore of the Sea of Tiberias?",
		Options: []Option{
			{Label: "A", Text: "Breakfast by the Sea (Post-Resurrection)"},
			{Label: "B", Text: "Wedding at Cana"},
			{Label: "C", Text: "Miraculous Catch of Fish"},
			{Label: "D", Text: "Last Supper"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       30,
		Emojis:   []string{"🧂", "💡"},
		Question: "Jesus famously described his followers as the ______ and the ______.",
		Options: []Option{
			{Label: "A", Text: "Salt of the Earth / Light of the World"},
			{Label: "B", Text: "Bread of Life"},
			{Label: "C", Text: "Water of Life"},
			{Label: "D", Text: "Good Shepherd"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       31,
		Emojis:   []string{"🪙", "✋"},
		Question: "What phrase did Jesus use when asked about paying taxes to Rome?",
		Options: []Option{
			{Label: "A", Text: "Render unto Caesar"},
			{Label: "B", Text: "Pay your taxes"},
			{Label: "C", Text: "The Temple Tax"},
			{Label: "D", Text: "Widow's Mite"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       32,
		Emojis:   []string{"👰‍♀️", "💡", "😴", "🛌"},
		Question: "Five of the women in this parable were wise and five were foolish.",
		Options: []Option{
			{Label: "A", Text: "Parable of the Ten Virgins"},
			{Label: "B", Text: "Parable of the Wedding Feast"},
			{Label: "C", Text: "Parable of the Two Sons"},
			{Label: "D", Text: "Parable of the Yeast"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       33,
		Emojis:   []string{"👂", "🔪", "🤕", "🧑‍⚕️"},
		Question: "Which servant of the High Priest had his ear cut off by Peter?",
		Options: []Option{
			{Label: "A", Text: "Malchus (Servant whose ear Peter cut off)"},
			{Label: "B", Text: "Barabbas"},
			{Label: "C", Text: "Annas"},
			{Label: "D", Text: "Caiaphas"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       34,
		Emojis:   []string{"🏺", "🌊", "🧹", "💦"},
		Question: "What symbolic action did Pilate perform before handing Jesus over for crucifixion?",
		Options: []Option{
			{Label: "A", Text: "Ritual Washing of Hands (Pilate's act)"},
			{Label: "B", Text: "Cleansing of the Temple"},
			{Label: "C", Text: "Baptism of John"},
			{Label: "D", Text: "Wedding at Cana"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       35,
		Emojis:   []string{"🕊️", "🚿", "👑"},
		Question: "What unique event occurred when Jesus was baptized by John?",
		Options: []Option{
			{Label: "A", Text: "Jesus' Baptism (The voice and the dove)"},
			{Label: "B", Text: "The Transfiguration"},
			{Label: "C", Text: "Pentecost"},
			{Label: "D", Text: "The Ascension"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       36,
		Emojis:   []string{"👑", "x3"},
		Question: "Which of the following was NOT one of the gifts brought by the Magi?",
		Options: []Option{
			{Label: "A", Text: "Silver"},
			{Label: "B", Text: "Gold"},
			{Label: "C", Text: "Frankincense"},
			{Label: "D", Text: "Myrrh"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       37,
		Emojis:   []string{"🧱", "🪨", "🏗️", "🔑"},
		Question: "To which Apostle did Jesus say, \"You are Peter, and on this rock I will build my church?\"",
		Options: []Option{
			{Label: "A", Text: "Peter (The Rock)"},
			{Label: "B", Text: "John"},
			{Label: "C", Text: "James"},
			{Label: "D", Text: "Matthew"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       38,
		Emojis:   []string{"🤫", "💰", "🔔"},
		Question: "This teaching warns against performing acts of piety for public praise.",
		Options: []Option{
			{Label: "A", Text: "Almsgiving (Do not let your left hand know)"},
			{Label: "B", Text: "Praying in Public"},
			{Label: "C", Text: "Fasting"},
			{Label: "D", Text: "Forgiveness"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       39,
		Emojis:   []string{"🪱", "🔥", "💀"},
		Question: "Jesus used the word Gehenna to refer to what place of punishment?",
		Options: []Option{
			{Label: "A", Text: "Gehenna (Valley of Hinnom/Hell)"},
			{Label: "B", Text: "Hades"},
			{Label: "C", Text: "Tartarus"},
			{Label: "D", Text: "Limbo"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       40,
		Emojis:   []string{"🍇", "🧺", "📦"},
		Question: "Which parable challenges the concept of fairness in receiving God's grace?",
		Options: []Option{
			{Label: "A", Text: "Parable of the Laborers in the Vineyard"},
			{Label: "B", Text: "Parable of the Unmerciful Servant"},
			{Label: "C", Text: "Parable of the Fig Tree"},
			{Label: "D", Text: "Parable of the Rich Fool"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       41,
		Emojis:   []string{"👨‍👧‍👦", "x2"},
		Question: "A father asks his children to go work in the vineyard in this parable.",
		Options: []Option{
			{Label: "A", Text: "Parable of the Two Sons"},
			{Label: "B", Text: "Parable of the Prodigal Son"},
			{Label: "C", Text: "Parable of the Talents"},
			{Label: "D", Text: "Parable of the Lost Sheep"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       42,
		Emojis:   []string{"🌾", "🌿", "🔪", "🧺"},
		Question: "This parable explains that evil people (weeds) grow with good people (wheat) until the harvest (end of the age).",
		Options: []Option{
			{Label: "A", Text: "Parable of the Weeds (Tares)"},
			{Label: "B", Text: "Parable of the Mustard Seed"},
			{Label: "C", Text: "Parable of the Sower"},
			{Label: "D", Text: "Parable of the Leaven"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       43,
		Emojis:   []string{"🤒", "✝️", "🚪"},
		Question: "Whose servant was healed because of his master's great faith, even though Jesus did not enter the house?",
		Options: []Option{
			{Label: "A", Text: "The Centurion's Servant"},
			{Label: "B", Text: "Lazarus"},
			{Label: "C", Text: "Jairus' Daughter"},
			{Label: "D", Text: "Woman with Hemorrhage"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       44,
		Emojis:   []string{"💰", "🌊", "🐟"},
		Question: "Peter found the necessary payment for the Temple Tax in the mouth of a...",
		Options: []Option{
			{Label: "A", Text: "Coin in the Fish's Mouth"},
			{Label: "B", Text: "Tribute Money"},
			{Label: "C", Text: "Miraculous Catch"},
			{Label: "D", Text: "Selling all possessions"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       45,
		Emojis:   []string{"🪢", "⚖️", "❌"},
		Question: "A servant who was forgiven a large debt refuses to forgive a smaller debt in this parable.",
		Options: []Option{
			{Label: "A", Text: "Parable of the Unmerciful Servant"},
			{Label: "B", Text: "Parable of the Talents"},
			{Label: "C", Text: "Parable of the Lost Sheep"},
			{Label: "D", Text: "Parable of the Rich Fool"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       46,
		Emojis:   []string{"💍", "👠", "🍽️"},
		Question: "The father celebrated his returning son by preparing a feast with the...",
		Options: []Option{
			{Label: "A", Text: "The Fatted Calf (Prodigal Son's Return)"},
			{Label: "B", Text: "Wedding at Cana"},
			{Label: "C", Text: "Last Supper"},
			{Label: "D", Text: "Feeding of the 5,000"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       47,
		Emojis:   []string{"✝️", "👤"},
		Question: "Which man was compelled by the Romans to carry Jesus' cross?",
		Options: []Option{
			{Label: "A", Text: "Simon of Cyrene"},
			{Label: "B", Text: "Joseph of Arimathea"},
			{Label: "C", Text: "Nicodemus"},
			{Label: "D", Text: "Dismas (Good Thief)"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       48,
		Emojis:   []string{"💰", "💸", "🕯️"},
		Question: "A woman searches diligently for one missing piece of currency in this parable.",
		Options: []Option{
			{Label: "A", Text: "Parable of the Lost Coin"},
			{Label: "B", Text: "Parable of the Hidden Treasure"},
			{Label: "C", Text: "Parable of the Talents"},
			{Label: "D", Text: "Parable of the Pearl"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       49,
		Emojis:   []string{"🌅", "👤", "👤", "👤"},
		Question: "Jesus, Moses, and Elijah were seen together in this radiant event.",
		Options: []Option{
			{Label: "A", Text: "The Transfiguration"},
			{Label: "B", Text: "Ascension"},
			{Label: "C", Text: "Pentecost"},
			{Label: "D", Text: "Calling of the Twelve"},
		},
		CorrectLabel: "A",
	},
	{
		ID:       50,
		Emojis:   []string{"🕳️", "⛓️", "🐷"},
		Question: "Which famous demoniac's demons were cast into a herd of swine?",
		Options: []Option{
			{Label: "A", Text: "Legion (Gerasene Demoniac)"},
			{Label: "B", Text: "Blind Bartimaeus"},
			{Label: "C", Text: "Woman at the Well"},
			{Label: "D", Text: "Lazarus"},
		},
		CorrectLabel: "A",
	},
}
