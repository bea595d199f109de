package catalog

// The six rubric dimensions every item is rated on.
var rubricPrompts = [6]string{
	"Accuracy & Clarity: Were the descriptions factually correct and easy to understand? (i.e. Were the names, locations, and actions identified correctly without jargon or mistakes?)",
	"Prioritization: Did the descriptions tell you the most important things you needed to know, without too much extra details? (i.e. Did the description leave out essential actions (long, confusing pauses) OR did it include so many unecessary details that it became distracting?)",
	"Consistency: Did the description maintain a consistent style, tone, and use of terms? (i.e. Was the language level right for the content, and did the describer use the same name/term for the same person/object throughout?)",
	"Objectivity: Did the description stick to objective facts and actions, without adding personal bias or unnecessary interpretation? (i.e. Did the describer tell you what to think instea of what they saw?)",
	"Timing & Placement: Were the descriptions placed seamlessly, without cutting off dialogue or sound effects? (i.e. Were the descriptions too early or too late relative to the action, or did they interrupt the original audio?)",
	"Use of Extended Description: If the video paused for a description, did this feel necessary and helpful? (i.e. Was the extended description used appropriately for text, complex scenes, or when time was otherwise tight?)",
}

func newItem(id, title string, phase Phase, order int, mediaURL string, refs [6]int, rationales map[int]string) Item {
	qs := make([]Question, len(rubricPrompts))
	for i, prompt := range rubricPrompts {
		qs[i] = Question{ID: i + 1, Prompt: prompt, Reference: refs[i], Rationale: rationales[i+1]}
	}
	return Item{ID: id, Title: title, Phase: phase, Order: order, MediaURL: mediaURL, Questions: qs}
}

func training(id, title string, order int, mediaURL string, refs [6]int, rationales map[int]string) Item {
	return newItem(id, title, PhaseTraining, order, mediaURL, refs, rationales)
}

func test(id string, order int, mediaURL string, refs [6]int) Item {
	return newItem(id, "Test Video "+id[len("test"):], PhaseTest, order, mediaURL, refs, nil)
}

var trainingItems = []Item{
	// Frozen trailer, Gemini description
	training("training1", "Training Video 1", 1,
		"https://www.ydxlana.online/embed/EnnZnxhDU-4?ad=688fadcd54d66fdeb00d79cf",
		[6]int{4, 4, 4, 5, 4, 4},
		map[int]string{
			1: "There are a few minor mistakes: the description of the Disney logo is missing; 'stick' is used instead of the more accurate 'Olaf's stick arm'; and the explanation of how Sven's hair causes Olaf to sneeze again is omitted.",
			2: "Good prioritization overall, such as correctly naming 'Sven the reindeer.' However, some parts are over-described, which distracts from emphasizing the musical themes of the animation.",
			3: "The writing maintains a consistent style and uses vocabulary appropriate for a children's audience. However, there are some verb tense mistakes, for example: 'Sven's head emerges from the water near the carrot, but his tongue got stuck on the ice.'",
			4: "Fully objective and focus only on the visible facts.",
			5: "Generally good timing and placement. However, some AD was too early, for example, Olaf's nose popping off was described at 14:00 but does not actually occur until about 5 seconds later.",
			6: "No extended descriptions, which was a good choice for the entertainment category. However, in one or two cases, sounds or actions were presented without describing the accompanying visuals, where an extended description could have been helpful.",
		}),
	// 5 Minute Makeup, human description
	training("training2", "Training Video 2", 2,
		"https://www.ydxlana.online/embed/i1GyF14WKjQ?ad=688d40f1635c3fb094bbe95a",
		[6]int{4, 2, 3, 4, 2, 3},
		map[int]string{
			1: "The details are vague for a step by step video.",
			2: "Some descriptions were unnecessary because Roxetta already provided the information directly. For example, she introduces herself verbally, so viewers do not need an additional description stating 'she is introducing herself.'",
			3: "The description lacks clear and consistent language for directionality. Terms such as 'blend it out' are vague without specifying the brush used, the stroke, or the direction (e.g., blending toward the hairline).",
			4: "Mostly objective overall, but phrases like 'as you can see' are not helpful for non-visual audiences.",
			5: "Descriptions were not consistently placed to match the flow of the video. There were long gaps where visuals passed without any narration, creating uneven coverage. These timing gaps made the descriptions feel disconnected from the action and less seamlessly integrated with the original audio.",
			6: "Many extended descriptions felt unnecessary and added little value to understanding the content. The descriptions often interrupted the tutorial flow without providing new or essential information.",
		}),
	// Elf trailer, human description
	training("training3", "Training Video 3", 3,
		"https://www.ydxlana.online/embed/dJU1SZIfK3Y?ad=6889abc616020c4c702ea281",
		[6]int{3, 2, 4, 3, 4, 3},
		map[int]string{
			1: "An inaccurate description occurs when Buddy turns around after overhearing the other elves: the AD says he 'exits the building,' which is incorrect and misleading. It also states he is in the toy closet, which he is not.",
			2: "The narration lacks a consistent narrative style. At some points it provides detail, while at others it drops off, creating gaps and disrupting consistency in tone and flow.",
			3: "The description style is not fully consistent. At times, the tone and terminology shift, making the narration feel uneven rather than maintaining a uniform style throughout.",
			4: "Several interpretation and editorializing appear, such as 'looks extremely shocked,' which imposes judgment. The AD also explains why Buddy is having flashbacks instead of simply describing the flashback scenes.",
			5: "The description could have been placed slightly earlier and not in the middle of dialogue.",
			6: "Extended descriptions are used when not needed (they could have been inserted inline since there was no dialogue), and at the same time there is not enough overall description.",
		}),
	// Jane Goodall, Gemini description
	training("training4", "Training Video 4", 4,
		"https://www.ydxlana.online/embed/_1DDhUnyvwY?ad=68903a6254d66fdeb00d899d",
		[6]int{5, 5, 5, 5, 4, 4},
		map[int]string{
			1: "Clear and accurate information throughout.",
			2: "Clear and well-developed descriptions of visual actions.",
			3: "Content was described with consistent language.",
			4: "Maintained objectivity throughout.",
			5: "Overall good placement with some minor interruptions.",
			6: "Some descriptions interrupted the speaker in noticeable ways that was not smooth such as extended descriptions about the snakes and bugs.",
		}),
}

var testItems = []Item{
	// Star Wars: human, Qwen, GPT
	test("test1", 1, "https://www.ydxlana.online/embed/adzYW5DZoWs?ad=6883cc2feec5c3a2c62b475f", [6]int{5, 5, 5, 5, 5, 5}),
	test("test2", 2, "https://www.ydxlana.online/embed/adzYW5DZoWs?ad=68890c2b16020c4c702e862e", [6]int{4, 4, 3, 5, 4, 3}),
	test("test3", 3, "https://www.ydxlana.online/embed/adzYW5DZoWs?ad=68890e0716020c4c702e87f3", [6]int{5, 5, 4, 5, 4, 5}),
	// Jane Goodall
	test("test4", 4, "https://www.ydxlana.online/embed/_1DDhUnyvwY?ad=6890169154d66fdeb00d860d", [6]int{2, 2, 4, 5, 2, 2}),
	test("test5", 5, "https://www.ydxlana.online/embed/_1DDhUnyvwY?ad=689017a954d66fdeb00d873c", [6]int{4, 3, 5, 5, 4, 4}),
	test("test6", 6, "https://www.ydxlana.online/embed/_1DDhUnyvwY?ad=6890432a54d66fdeb00d8d2c", [6]int{4, 4, 4, 5, 4, 4}),
	// Elf
	test("test7", 7, "https://www.ydxlana.online/embed/dJU1SZIfK3Y?ad=688acc6c16020c4c702ec140", [6]int{4, 4, 5, 4, 4, 4}),
	test("test8", 8, "https://www.ydxlana.online/embed/dJU1SZIfK3Y?ad=688ac54016020c4c702ec01f", [6]int{4, 4, 5, 5, 5, 5}),
	test("test9", 9, "https://www.ydxlana.online/embed/dJU1SZIfK3Y?ad=688aeb2e16020c4c702ec4f7", [6]int{3, 4, 4, 3, 4, 4}),
	// Crash Course Kids
	test("test10", 10, "https://www.ydxlana.online/embed/Fnd-2jetT1w?ad=68892aa416020c4c702e8a1f", [6]int{3, 3, 4, 5, 3, 3}),
	test("test11", 11, "https://www.ydxlana.online/embed/Fnd-2jetT1w?ad=68911faddbae5c3ed416c486", [6]int{4, 4, 5, 5, 4, 3}),
	test("test12", 12, "https://www.ydxlana.online/embed/Fnd-2jetT1w?ad=6889600416020c4c702e9739", [6]int{5, 4, 5, 5, 4, 4}),
	// Lady Bird
	test("test13", 13, "https://www.ydxlana.online/embed/cNi_HC839Wo?ad=688af4a616020c4c702ec5b2", [6]int{5, 5, 5, 5, 4, 5}),
	test("test14", 14, "https://www.ydxlana.online/embed/cNi_HC839Wo?ad=688b0cdb16020c4c702ecac8", [6]int{4, 3, 4, 5, 4, 3}),
	test("test15", 15, "https://www.ydxlana.online/embed/cNi_HC839Wo?ad=688bf9db16020c4c702ef4b1", [6]int{4, 3, 5, 5, 4, 3}),
	// 5 Minute Makeup
	test("test16", 16, "https://www.ydxlana.online/embed/i1GyF14WKjQ?ad=688ea804635c3fb094bc0f04", [6]int{4, 4, 5, 5, 4, 4}),
	test("test17", 17, "https://www.ydxlana.online/embed/i1GyF14WKjQ?ad=688ea695635c3fb094bc0d9a", [6]int{4, 5, 5, 4, 5, 5}),
	test("test18", 18, "https://www.ydxlana.online/embed/i1GyF14WKjQ?ad=688ede5d9b07c9dc6864a77f", [6]int{5, 5, 5, 5, 5, 5}),
	// Origami
	test("test19", 19, "https://www.ydxlana.online/embed/oUCSXtTHo5s?ad=688c06531fb6b58fa67263fd", [6]int{4, 5, 5, 5, 3, 5}),
	test("test20", 20, "https://www.ydxlana.online/embed/oUCSXtTHo5s?ad=688c008316020c4c702ef63d", [6]int{2, 2, 3, 5, 3, 3}),
	test("test21", 21, "https://www.ydxlana.online/embed/oUCSXtTHo5s?ad=688c62241fb6b58fa672681f", [6]int{4, 4, 4, 5, 4, 5}),
	// Bald Eagles
	test("test22", 22, "https://www.ydxlana.online/embed/oKficmlxzaI?ad=688fcc6754d66fdeb00d7c1a", [6]int{4, 4, 4, 5, 4, 4}),
	test("test23", 23, "https://www.ydxlana.online/embed/oKficmlxzaI?ad=688ffa0354d66fdeb00d7f1c", [6]int{5, 4, 5, 4, 4, 4}),
	test("test24", 24, "https://www.ydxlana.online/embed/oKficmlxzaI?ad=68900c6254d66fdeb00d8468", [6]int{4, 4, 5, 5, 4, 4}),
	// 3 Ways Pickles
	test("test25", 25, "https://www.ydxlana.online/embed/ajzArdLK6tE?ad=6889679816020c4c702e9c0b", [6]int{4, 4, 5, 5, 4, 5}),
	test("test26", 26, "https://www.ydxlana.online/embed/ajzArdLK6tE?ad=688965cc16020c4c702e9b88", [6]int{4, 4, 3, 5, 4, 4}),
	test("test27", 27, "https://www.ydxlana.online/embed/ajzArdLK6tE?ad=6889946c16020c4c702ea176", [6]int{4, 4, 4, 5, 4, 5}),
	// Frozen trailer
	test("test28", 28, "https://www.ydxlana.online/embed/EnnZnxhDU-4?ad=688ecd577d564a0e5d5dabe6", [6]int{4, 4, 5, 4, 4, 5}),
	test("test29", 29, "https://www.ydxlana.online/embed/EnnZnxhDU-4?ad=688ec39e635c3fb094bc106c", [6]int{3, 3, 3, 4, 3, 4}),
	test("test30", 30, "https://www.ydxlana.online/embed/EnnZnxhDU-4?ad=688fb87954d66fdeb00d7b03", [6]int{4, 4, 4, 5, 4, 4}),
}
