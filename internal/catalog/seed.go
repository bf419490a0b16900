package catalog

// Built-in seed data. The demo catalog covers 2012-2018 with full item
// coverage for 2016.

var seedYears = []Year{
	{
		ID:          "2012",
		Year:        2012,
		Description: "The year of viral videos and the rise of mobile social media. Gangnam Style took over the world.",
		Theme:       "discovery",
		TopTrends:   []string{"Gangnam Style", "Kony 2012", "Diamond Grill", "Twerking"},
	},
	{
		ID:          "2013",
		Year:        2013,
		Description: "Selfie becomes Word of the Year. Harlem Shake craze and the beginning of the Drake era.",
		Theme:       "selfie",
		TopTrends:   []string{"Selfie", "Harlem Shake", "Twerking", "Miley Cyrus"},
	},
	{
		ID:          "2014",
		Year:        2014,
		Description: "Ice Bucket Challenge sweeps the internet. Frozen dominates pop culture. The dress that broke the internet.",
		Theme:       "ice-bucket",
		TopTrends:   []string{"Ice Bucket Challenge", "Frozen", "The Dress", "Pharrell Happy"},
	},
	{
		ID:          "2015",
		Year:        2015,
		Description: "Rise of the fidget spinner and hotdog arms. Drake takes over streaming. Star Wars returns.",
		Theme:       "streaming",
		TopTrends:   []string{"Fidget Spinner", "Hotdog Arms", "Drake", "Star Wars"},
	},
	{
		ID:          "2016",
		Year:        2016,
		Description: "The peak of viral memes. Pokémon GO craze, Trump election, and the rise of TikTok. A year of internet history.",
		Theme:       "pokemon-go",
		TopTrends:   []string{"Pokémon GO", "Damn Daniel", "Harambe", "Cash Me Outside"},
	},
	{
		ID:          "2017",
		Year:        2017,
		Description: "Despacito summer and the Charlottesville incident. Bitcoin surges. Logan Paul controversy.",
		Theme:       "despacito",
		TopTrends:   []string{"Despacito", "Bitcoin", "Charlottesville", "Logan Paul"},
	},
	{
		ID:          "2018",
		Year:        2018,
		Description: "Kylie Jenner becomes youngest billionaire. Avengers Infinity War. Tide Pod challenge disaster.",
		Theme:       "infinity",
		TopTrends:   []string{"Avengers", "Kylie Jenner", "Tide Pods", "In My Feelings"},
	},
}

var seedMonths = []Month{
	{ID: "jan-2016", Name: "January", YearID: "2016", ShortName: "Jan"},
	{ID: "feb-2016", Name: "February", YearID: "2016", ShortName: "Feb"},
	{ID: "mar-2016", Name: "March", YearID: "2016", ShortName: "Mar"},
	{ID: "apr-2016", Name: "April", YearID: "2016", ShortName: "Apr"},
	{ID: "may-2016", Name: "May", YearID: "2016", ShortName: "May"},
	{ID: "jun-2016", Name: "June", YearID: "2016", ShortName: "Jun"},
	{ID: "jul-2016", Name: "July", YearID: "2016", ShortName: "Jul"},
	{ID: "aug-2016", Name: "August", YearID: "2016", ShortName: "Aug"},
	{ID: "sep-2016", Name: "September", YearID: "2016", ShortName: "Sep"},
	{ID: "oct-2016", Name: "October", YearID: "2016", ShortName: "Oct"},
	{ID: "nov-2016", Name: "November", YearID: "2016", ShortName: "Nov"},
	{ID: "dec-2016", Name: "December", YearID: "2016", ShortName: "Dec"},
}

var seedCategories = []Category{
	{ID: "memes", Name: "Memes", Type: CategoryMemes, Icon: "😂"},
	{ID: "music", Name: "Music", Type: CategoryMusic, Icon: "🎵"},
	{ID: "dances", Name: "Dances", Type: CategoryDances, Icon: "💃"},
	{ID: "style", Name: "Style", Type: CategoryStyle, Icon: "👗"},
	{ID: "trends", Name: "Trends", Type: CategoryTrends, Icon: "📈"},
	{ID: "movies", Name: "Movies & TV", Type: CategoryMovies, Icon: "🎬"},
	{ID: "celebrities", Name: "Celebrities", Type: CategoryCelebrities, Icon: "⭐"},
	{ID: "other", Name: "Other", Type: CategoryOther, Icon: "📦"},
}

var seedItems = []Item{
	{
		ID:              "item-1",
		Title:           "Damn Daniel",
		Description:     `A viral video where two teens record their friend Daniel wearing white Vans constantly. The catchphrase "Damn Daniel! Back at it again with the white Vans!" became a massive meme.`,
		CategoryID:      "memes",
		MonthID:         "jan-2016",
		YearID:          "2016",
		PopularityScore: 98,
		Slug:            "damn-daniel",
		Timeline:        &Timeline{Start: "Feb 2016", Peak: "Mar 2016"},
		Impact:          "Spawned countless remixes and became a cultural touchstone for 2016.",
	},
	{
		ID:              "item-2",
		Title:           "Stranger Things",
		Description:     "Netflix released this sci-fi horror series that became an instant hit. The 80s nostalgia and compelling story made it one of the most-watched shows of the year.",
		CategoryID:      "movies",
		MonthID:         "jan-2016",
		YearID:          "2016",
		PopularityScore: 97,
		Slug:            "stranger-things",
		Timeline:        &Timeline{Start: "Jul 2016", Peak: "Aug 2016"},
		Impact:          "Revived interest in 80s culture and launched the careers of its young cast.",
	},
	{
		ID:              "item-3",
		Title:           "Harambe Memorial",
		Description:     "After a gorilla was shot at a zoo, the internet mourned with a flood of memes claiming Harambe died for our sins. Some donated to gorilla conservation in his name.",
		CategoryID:      "memes",
		MonthID:         "feb-2016",
		YearID:          "2016",
		PopularityScore: 99,
		Slug:            "harambe",
		Timeline:        &Timeline{Start: "May 2016", Peak: "Jun 2016"},
		Impact:          "One of the most viral memes of 2016, combining animal rights with absurdist humor.",
	},
	{
		ID:              "item-4",
		Title:           "Kanye West - Life of Pablo",
		Description:     "Kanye released his seventh studio album with massive hype. The tour merchandise and album delays made headlines throughout the year.",
		CategoryID:      "music",
		MonthID:         "feb-2016",
		YearID:          "2016",
		PopularityScore: 92,
		Slug:            "life-of-pablo",
		Timeline:        &Timeline{Start: "Feb 2016", Peak: "Apr 2016"},
		Impact:          "Set streaming records and sparked debates about artistic genius.",
	},
	{
		ID:              "item-5",
		Title:           "Hamilton",
		Description:     "The Broadway musical about Alexander Hamilton took the world by storm. The cast performed at the Grammys and the cast recording dominated charts.",
		CategoryID:      "movies",
		MonthID:         "mar-2016",
		YearID:          "2016",
		PopularityScore: 94,
		Slug:            "hamilton",
		Timeline:        &Timeline{Start: "Feb 2016", Peak: "Jun 2016"},
		Impact:          "Revolutionized Broadway and made Lin-Manuel Miranda a household name.",
	},
	{
		ID:              "item-6",
		Title:           "Adele - 25",
		Description:     `Adele's second album broke records globally. "Hello" became one of the best-selling singles of all time.`,
		CategoryID:      "music",
		MonthID:         "apr-2016",
		YearID:          "2016",
		PopularityScore: 96,
		Slug:            "adele-25",
		Timeline:        &Timeline{Start: "Nov 2015", Peak: "Jan 2016"},
		Impact:          "Proved traditional pop still dominates in the streaming era.",
	},
	{
		ID:              "item-7",
		Title:           "Cash Me Outside",
		Description:     `A teenage girl appeared on Dr. Phil saying "Cash me outside, howbow dah?" The phrase became a massive meme and she launched a music career.`,
		CategoryID:      "memes",
		MonthID:         "may-2016",
		YearID:          "2016",
		PopularityScore: 95,
		Slug:            "cash-me-outside",
		Timeline:        &Timeline{Start: "Sep 2016", Peak: "Oct 2016"},
		Impact:          "Started the era of social media personalities transitioning to music careers.",
	},
	{
		ID:              "item-8",
		Title:           "Pokémon GO",
		Description:     "Niantic released the augmented reality game that took over the world. People walked into parks, ponds, and cemeteries to catch Pokémon.",
		CategoryID:      "trends",
		MonthID:         "jun-2016",
		YearID:          "2016",
		PopularityScore: 100,
		Slug:            "pokemon-go",
		Timeline:        &Timeline{Start: "Jul 2016", Peak: "Jul 2016"},
		Impact:          "Proved AR gaming's potential and got millions outside catching virtual creatures.",
	},
	{
		ID:              "item-9",
		Title:           "Euro 2016",
		Description:     "The European Championship brought viral moments including Portugal's victory and Iceland's Viking Clap celebration.",
		CategoryID:      "trends",
		MonthID:         "jun-2016",
		YearID:          "2016",
		PopularityScore: 88,
		Slug:            "euro-2016",
		Timeline:        &Timeline{Start: "Jun 2016", Peak: "Jul 2016"},
		Impact:          "Iceland's underdog story captured hearts worldwide.",
	},
	{
		ID:              "item-10",
		Title:           "Oculus Rift",
		Description:     "Consumer VR finally arrived with the Oculus Rift. While adoption was limited, it kicked off the VR revolution.",
		CategoryID:      "trends",
		MonthID:         "jul-2016",
		YearID:          "2016",
		PopularityScore: 85,
		Slug:            "oculus-rift",
		Timeline:        &Timeline{Start: "Mar 2016", Peak: "Jun 2016"},
		Impact:          "Marked the beginning of mainstream VR gaming.",
	},
	{
		ID:              "item-11",
		Title:           "Rio Olympics",
		Description:     "The Rio Olympics brought viral moments like Usain Bolt's pose, the Zika virus fears, and Simone Biles's dominance.",
		CategoryID:      "trends",
		MonthID:         "aug-2016",
		YearID:          "2016",
		PopularityScore: 93,
		Slug:            "rio-olympics",
		Timeline:        &Timeline{Start: "Aug 2016", Peak: "Aug 2016"},
		Impact:          "Michael Phelps's final games and Katie Ledecky's dominance highlighted swimming.",
	},
	{
		ID:              "item-12",
		Title:           "Saquon Barkley",
		Description:     "The running back's legendary stiff arm against Ohio State went viral and made him a Heisman favorite.",
		CategoryID:      "trends",
		MonthID:         "aug-2016",
		YearID:          "2016",
		PopularityScore: 87,
		Slug:            "saquon-barkley-stiff-arm",
		Timeline:        &Timeline{Start: "Oct 2016", Peak: "Nov 2016"},
		Impact:          "One of the most iconic plays in college football history.",
	},
	{
		ID:              "item-13",
		Title:           "Apple AirPods",
		Description:     "Apple released wireless earbuds that were initially mocked but became a massive status symbol and fashion item.",
		CategoryID:      "style",
		MonthID:         "sep-2016",
		YearID:          "2016",
		PopularityScore: 91,
		Slug:            "apple-airpods",
		Timeline:        &Timeline{Start: "Dec 2016", Peak: "2017"},
		Impact:          "Killed the headphone jack and made wireless earbuds mainstream.",
	},
	{
		ID:              "item-14",
		Title:           "David After Dentist",
		Description:     `Years after the original video, the "Is This Real Life?" meme brought this kid's reaction to dental anesthesia back into viral fame.`,
		CategoryID:      "memes",
		MonthID:         "oct-2016",
		YearID:          "2016",
		PopularityScore: 86,
		Slug:            "david-after-dentist-meme",
		Timeline:        &Timeline{Start: "Oct 2016", Peak: "Nov 2016"},
		Impact:          "Showed how viral content can have second lives on social media.",
	},
	{
		ID:              "item-15",
		Title:           "2016 US Election",
		Description:     "One of the most controversial elections in US history dominated every platform and divided the internet.",
		CategoryID:      "trends",
		MonthID:         "nov-2016",
		YearID:          "2016",
		PopularityScore: 99,
		Slug:            "2016-us-election",
		Timeline:        &Timeline{Start: "Jan 2016", Peak: "Nov 2016"},
		Impact:          "Changed political discourse on social media forever.",
	},
	{
		ID:              "item-16",
		Title:           "Jared Fogle",
		Description:     "The former Subway spokesperson was sentenced to 15 years for child pornography charges, ending his career in disgrace.",
		CategoryID:      "celebrities",
		MonthID:         "nov-2016",
		YearID:          "2016",
		PopularityScore: 84,
		Slug:            "jared-fogle-sentenced",
		Timeline:        &Timeline{Start: "Nov 2015", Peak: "Nov 2015"},
		Impact:          "Major fall from grace that shocked the nation.",
	},
	{
		ID:              "item-17",
		Title:           "Star Wars: Rogue One",
		Description:     "The standalone Star Wars film brought back Darth Vader and broke box office records during the holiday season.",
		CategoryID:      "movies",
		MonthID:         "dec-2016",
		YearID:          "2016",
		PopularityScore: 95,
		Slug:            "rogue-one",
		Timeline:        &Timeline{Start: "Dec 2016", Peak: "Dec 2016"},
		Impact:          "Proved the Star Wars universe could succeed beyond the main saga.",
	},
	{
		ID:              "item-18",
		Title:           "Keep Calm and 川普万岁",
		Description:     "Chinese internet's bizarre meme-making of Trump before his inauguration showed the global nature of meme culture.",
		CategoryID:      "memes",
		MonthID:         "dec-2016",
		YearID:          "2016",
		PopularityScore: 82,
		Slug:            "trump-china-meme",
		Timeline:        &Timeline{Start: "Nov 2016", Peak: "Jan 2017"},
		Impact:          "Demonstrated how memes cross cultural and language barriers.",
	},
}
