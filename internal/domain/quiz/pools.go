package quiz

import "sort"

// Fixed question pools, keyed by topic then difficulty. The catalog covers
// four topics at three difficulty levels with fifteen questions each; any
// other (topic, difficulty) pair has no pool and cannot produce a quiz.
var pools = map[string]map[Difficulty][]Question{
	"Mathematics": {
		DifficultyEasy: {
			{Prompt: "What is 5 + 3?", Options: []string{"7", "8", "9", "6"}, Correct: 1},
			{Prompt: "What is 10 - 4?", Options: []string{"6", "7", "5", "8"}, Correct: 0},
			{Prompt: "What is 2 × 3?", Options: []string{"5", "6", "7", "8"}, Correct: 1},
			{Prompt: "What is 12 ÷ 4?", Options: []string{"2", "3", "4", "5"}, Correct: 1},
			{Prompt: "What is 7 + 8?", Options: []string{"14", "15", "16", "13"}, Correct: 1},
			{Prompt: "What is 20 - 5?", Options: []string{"15", "14", "16", "13"}, Correct: 0},
			{Prompt: "What is 9 × 2?", Options: []string{"16", "18", "20", "22"}, Correct: 1},
			{Prompt: "What is 25 ÷ 5?", Options: []string{"4", "5", "6", "7"}, Correct: 1},
			{Prompt: "What is 6 + 9?", Options: []string{"14", "15", "16", "17"}, Correct: 1},
			{Prompt: "What is 18 - 7?", Options: []string{"10", "11", "12", "13"}, Correct: 1},
			{Prompt: "What is 4 × 7?", Options: []string{"26", "28", "30", "32"}, Correct: 1},
			{Prompt: "What is 36 ÷ 6?", Options: []string{"5", "6", "7", "8"}, Correct: 1},
			{Prompt: "What is 11 + 14?", Options: []string{"24", "25", "26", "27"}, Correct: 1},
			{Prompt: "What is 30 - 12?", Options: []string{"16", "17", "18", "19"}, Correct: 2},
			{Prompt: "What is 8 × 8?", Options: []string{"62", "64", "66", "68"}, Correct: 1},
		},
		DifficultyMedium: {
			{Prompt: "What is 15 + 27?", Options: []string{"42", "41", "43", "40"}, Correct: 0},
			{Prompt: "Solve: 8 × 7 = ?", Options: []string{"54", "56", "58", "52"}, Correct: 1},
			{Prompt: "What is 144 ÷ 12?", Options: []string{"11", "12", "13", "14"}, Correct: 1},
			{Prompt: "Calculate: 3² + 4² = ?", Options: []string{"25", "24", "16", "9"}, Correct: 0},
			{Prompt: "What is 25% of 80?", Options: []string{"20", "25", "30", "15"}, Correct: 0},
			{Prompt: "Solve: 15 × 6 = ?", Options: []string{"80", "90", "100", "110"}, Correct: 1},
			{Prompt: "What is 125 ÷ 5?", Options: []string{"20", "25", "30", "35"}, Correct: 1},
			{Prompt: "Calculate: 7² - 3² = ?", Options: []string{"40", "38", "36", "34"}, Correct: 0},
			{Prompt: "What is 33% of 150?", Options: []string{"45", "49.5", "50", "55"}, Correct: 1},
			{Prompt: "Solve: 45 + 67 = ?", Options: []string{"110", "112", "114", "116"}, Correct: 1},
			{Prompt: "What is 256 ÷ 16?", Options: []string{"14", "15", "16", "17"}, Correct: 2},
			{Prompt: "Calculate: 5³ = ?", Options: []string{"100", "115", "125", "135"}, Correct: 2},
			{Prompt: "What is 18 × 5?", Options: []string{"80", "85", "90", "95"}, Correct: 2},
			{Prompt: "Solve: 144 - 89 = ?", Options: []string{"55", "56", "57", "58"}, Correct: 0},
			{Prompt: "What is 75% of 200?", Options: []string{"140", "150", "160", "170"}, Correct: 1},
		},
		DifficultyHard: {
			{Prompt: "Solve: ∫(2x + 3)dx", Options: []string{"x² + 3x + C", "2x² + 3x + C", "x² + 6x + C", "4x + 3 + C"}, Correct: 0},
			{Prompt: "What is the derivative of sin(x)?", Options: []string{"cos(x)", "-cos(x)", "-sin(x)", "tan(x)"}, Correct: 0},
			{Prompt: "Solve: 2x + 5 = 15", Options: []string{"x = 5", "x = 10", "x = 7.5", "x = 6"}, Correct: 0},
			{Prompt: "What is the area of circle with radius 7?", Options: []string{"49π", "14π", "28π", "154π"}, Correct: 0},
			{Prompt: "Solve: log₁₀100 = ?", Options: []string{"1", "2", "10", "100"}, Correct: 1},
			{Prompt: "What is the value of i²?", Options: []string{"1", "-1", "0", "i"}, Correct: 1},
			{Prompt: "Solve: 3x - 7 = 14", Options: []string{"x = 6", "x = 7", "x = 8", "x = 9"}, Correct: 1},
			{Prompt: "What is the derivative of e^x?", Options: []string{"xe^x", "e^x", "ln(x)", "1/x"}, Correct: 1},
			{Prompt: "Solve: x² - 5x + 6 = 0", Options: []string{"x=2,3", "x=1,6", "x=-2,-3", "x=-1,-6"}, Correct: 0},
			{Prompt: "What is the limit of (1/x) as x→∞?", Options: []string{"0", "1", "∞", "-∞"}, Correct: 0},
			{Prompt: "Solve: 2³ × 2² = ?", Options: []string{"2⁵", "2⁶", "4⁵", "4⁶"}, Correct: 0},
			{Prompt: "What is the integral of 3x²?", Options: []string{"x³ + C", "3x³ + C", "x² + C", "6x + C"}, Correct: 0},
			{Prompt: "Solve: |x-3| = 7", Options: []string{"x=10,-4", "x=4,-10", "x=7,-7", "x=3,-3"}, Correct: 0},
			{Prompt: "What is the value of sin(π/2)?", Options: []string{"0", "1", "-1", "0.5"}, Correct: 1},
			{Prompt: "Solve: 4x² - 16 = 0", Options: []string{"x=2,-2", "x=4,-4", "x=8,-8", "x=1,-1"}, Correct: 0},
		},
	},
	"Science": {
		DifficultyEasy: {
			{Prompt: "What do plants need to make food?", Options: []string{"Water only", "Sunlight only", "Sunlight and water", "Soil only"}, Correct: 2},
			{Prompt: "How many legs does a spider have?", Options: []string{"6", "8", "10", "4"}, Correct: 1},
			{Prompt: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, Correct: 1},
			{Prompt: "What is H₂O?", Options: []string{"Oxygen", "Hydrogen", "Water", "Carbon dioxide"}, Correct: 2},
			{Prompt: "Which animal can fly?", Options: []string{"Penguin", "Ostrich", "Eagle", "Kangaroo"}, Correct: 2},
			{Prompt: "What gas do humans breathe in?", Options: []string{"Carbon dioxide", "Oxygen", "Nitrogen", "Helium"}, Correct: 1},
			{Prompt: "Which is the largest mammal?", Options: []string{"Elephant", "Giraffe", "Blue whale", "Polar bear"}, Correct: 2},
			{Prompt: "What is the boiling point of water?", Options: []string{"50°C", "100°C", "150°C", "200°C"}, Correct: 1},
			{Prompt: "Which organ pumps blood?", Options: []string{"Liver", "Heart", "Lungs", "Brain"}, Correct: 1},
			{Prompt: "What is the closest star to Earth?", Options: []string{"Sirius", "Sun", "Alpha Centauri", "Betelgeuse"}, Correct: 1},
			{Prompt: "Which metal is liquid at room temperature?", Options: []string{"Iron", "Gold", "Mercury", "Silver"}, Correct: 2},
			{Prompt: "What is the main gas in the atmosphere?", Options: []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Hydrogen"}, Correct: 2},
			{Prompt: "Which planet has rings?", Options: []string{"Mars", "Venus", "Saturn", "Mercury"}, Correct: 2},
			{Prompt: "What is the chemical symbol for gold?", Options: []string{"Go", "Gd", "Au", "Ag"}, Correct: 2},
			{Prompt: "Which is NOT a state of matter?", Options: []string{"Solid", "Liquid", "Gas", "Energy"}, Correct: 3},
		},
		DifficultyMedium: {
			{Prompt: "What is the chemical symbol for water?", Options: []string{"H2O", "CO2", "O2", "N2"}, Correct: 0},
			{Prompt: "What is the boiling point of water?", Options: []string{"90°C", "100°C", "110°C", "120°C"}, Correct: 1},
			{Prompt: "Which gas do plants absorb?", Options: []string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Hydrogen"}, Correct: 1},
			{Prompt: "What is the speed of light?", Options: []string{"300,000 km/s", "150,000 km/s", "500,000 km/s", "1,000,000 km/s"}, Correct: 0},
			{Prompt: "Which law states F=ma?", Options: []string{"Newton's 1st", "Newton's 2nd", "Newton's 3rd", "Ohm's Law"}, Correct: 1},
			{Prompt: "What is photosynthesis?", Options: []string{"Plant breathing", "Plant eating", "Food making process", "Water absorption"}, Correct: 2},
			{Prompt: "Which planet is known for its great red spot?", Options: []string{"Mars", "Jupiter", "Saturn", "Venus"}, Correct: 1},
			{Prompt: "What is the atomic number of carbon?", Options: []string{"6", "12", "14", "8"}, Correct: 0},
			{Prompt: "Which element is the most abundant in universe?", Options: []string{"Oxygen", "Carbon", "Hydrogen", "Helium"}, Correct: 2},
			{Prompt: "What is the unit of electric current?", Options: []string{"Volt", "Ampere", "Ohm", "Watt"}, Correct: 1},
			{Prompt: "Which blood cells fight infection?", Options: []string{"Red blood cells", "White blood cells", "Platelets", "Plasma"}, Correct: 1},
			{Prompt: "What is the main component of natural gas?", Options: []string{"Propane", "Butane", "Methane", "Ethane"}, Correct: 2},
			{Prompt: "Which planet has the most moons?", Options: []string{"Jupiter", "Saturn", "Uranus", "Neptune"}, Correct: 1},
			{Prompt: "What is the pH of pure water?", Options: []string{"5", "6", "7", "8"}, Correct: 2},
			{Prompt: "Which scientist developed theory of relativity?", Options: []string{"Newton", "Einstein", "Galileo", "Hawking"}, Correct: 1},
		},
		DifficultyHard: {
			{Prompt: "What is the molecular formula for glucose?", Options: []string{"C6H12O6", "C12H22O11", "C2H6O", "C6H6"}, Correct: 0},
			{Prompt: "What is Newton's First Law?", Options: []string{"F=ma", "Every action has equal reaction", "Object at rest stays at rest", "Energy cannot be created"}, Correct: 2},
			{Prompt: "What is DNA?", Options: []string{"Deoxyribonucleic Acid", "Ribonucleic Acid", "Protein", "Enzyme"}, Correct: 0},
			{Prompt: "Which subatomic particle has negative charge?", Options: []string{"Proton", "Neutron", "Electron", "Positron"}, Correct: 2},
			{Prompt: "What is the Heisenberg Uncertainty Principle?", Options: []string{"Energy conservation", "Position-momentum uncertainty", "Wave-particle duality", "Relativity"}, Correct: 1},
			{Prompt: "Which planet has the strongest magnetic field?", Options: []string{"Earth", "Jupiter", "Saturn", "Neptune"}, Correct: 1},
			{Prompt: "What is the half-life of Carbon-14?", Options: []string{"5730 years", "11460 years", "2865 years", "10000 years"}, Correct: 0},
			{Prompt: "Which theory explains the origin of universe?", Options: []string{"String Theory", "Big Bang Theory", "Steady State Theory", "Multiverse Theory"}, Correct: 1},
			{Prompt: "What is the chemical formula for ozone?", Options: []string{"O2", "O3", "CO2", "H2O"}, Correct: 1},
			{Prompt: "Which element has the highest melting point?", Options: []string{"Tungsten", "Carbon", "Osmium", "Iridium"}, Correct: 0},
			{Prompt: "What is the speed of sound in air?", Options: []string{"331 m/s", "343 m/s", "299 m/s", "400 m/s"}, Correct: 1},
			{Prompt: "Which quantum number describes electron spin?", Options: []string{"Principal", "Azimuthal", "Magnetic", "Spin"}, Correct: 3},
			{Prompt: "What is the main component of black holes?", Options: []string{"Dark matter", "Singularity", "Neutron star", "White dwarf"}, Correct: 1},
			{Prompt: "Which law states PV=nRT?", Options: []string{"Boyle's Law", "Charles's Law", "Ideal Gas Law", "Avogadro's Law"}, Correct: 2},
			{Prompt: "What is the Planck constant?", Options: []string{"6.626×10^-34 J·s", "6.022×10^23 mol^-1", "1.381×10^-23 J/K", "9.109×10^-31 kg"}, Correct: 0},
		},
	},
	"History": {
		DifficultyEasy: {
			{Prompt: "Who was the first President of the United States?", Options: []string{"Thomas Jefferson", "George Washington", "John Adams", "Benjamin Franklin"}, Correct: 1},
			{Prompt: "In which country are the pyramids located?", Options: []string{"Greece", "Egypt", "Italy", "Turkey"}, Correct: 1},
			{Prompt: "When did World War II end?", Options: []string{"1944", "1945", "1946", "1947"}, Correct: 1},
			{Prompt: "Who discovered America?", Options: []string{"Christopher Columbus", "Vasco da Gama", "Marco Polo", "Ferdinand Magellan"}, Correct: 0},
			{Prompt: "Which empire was ruled by Julius Caesar?", Options: []string{"Greek", "Roman", "Egyptian", "Persian"}, Correct: 1},
			{Prompt: "When was the Declaration of Independence signed?", Options: []string{"1776", "1789", "1792", "1801"}, Correct: 0},
			{Prompt: "Who was the first man on the moon?", Options: []string{"Buzz Aldrin", "Neil Armstrong", "John Glenn", "Alan Shepard"}, Correct: 1},
			{Prompt: "Which war was fought between North and South USA?", Options: []string{"Revolutionary War", "Civil War", "World War I", "World War II"}, Correct: 1},
			{Prompt: "Who wrote the Declaration of Independence?", Options: []string{"George Washington", "Thomas Jefferson", "Benjamin Franklin", "John Adams"}, Correct: 1},
			{Prompt: "When did the Titanic sink?", Options: []string{"1910", "1912", "1914", "1916"}, Correct: 1},
			{Prompt: "Which ancient civilization built Machu Picchu?", Options: []string{"Aztec", "Maya", "Inca", "Olmec"}, Correct: 2},
			{Prompt: "Who was the first female Prime Minister of UK?", Options: []string{"Queen Elizabeth", "Margaret Thatcher", "Theresa May", "Indira Gandhi"}, Correct: 1},
			{Prompt: "When did the French Revolution begin?", Options: []string{"1776", "1789", "1799", "1812"}, Correct: 1},
			{Prompt: "Which pharaoh's tomb was discovered in 1922?", Options: []string{"Cleopatra", "Ramses II", "Tutankhamun", "Khufu"}, Correct: 2},
			{Prompt: "When was the Berlin Wall built?", Options: []string{"1945", "1955", "1961", "1975"}, Correct: 2},
		},
		DifficultyMedium: {
			{Prompt: "Who wrote the Declaration of Independence?", Options: []string{"George Washington", "Thomas Jefferson", "Benjamin Franklin", "John Adams"}, Correct: 1},
			{Prompt: "What year did the Titanic sink?", Options: []string{"1910", "1912", "1914", "1916"}, Correct: 1},
			{Prompt: "When did World War I begin?", Options: []string{"1912", "1914", "1916", "1918"}, Correct: 1},
			{Prompt: "Who was the first Roman Emperor?", Options: []string{"Julius Caesar", "Augustus", "Nero", "Caligula"}, Correct: 1},
			{Prompt: "Which civilization invented writing?", Options: []string{"Egyptian", "Greek", "Sumerian", "Chinese"}, Correct: 2},
			{Prompt: "When did the Renaissance begin?", Options: []string{"12th century", "14th century", "16th century", "18th century"}, Correct: 1},
			{Prompt: "Who was the first female pharaoh?", Options: []string{"Nefertiti", "Cleopatra", "Hatshepsut", "Nefertari"}, Correct: 2},
			{Prompt: "Which empire built the Great Wall?", Options: []string{"Mongol", "Chinese", "Roman", "Ottoman"}, Correct: 1},
			{Prompt: "When was the Magna Carta signed?", Options: []string{"1066", "1215", "1453", "1776"}, Correct: 1},
			{Prompt: "Who led the Protestant Reformation?", Options: []string{"John Calvin", "Martin Luther", "Henry VIII", "John Wesley"}, Correct: 1},
			{Prompt: "Which war ended with Treaty of Versailles?", Options: []string{"World War I", "World War II", "Korean War", "Vietnam War"}, Correct: 0},
			{Prompt: "When was the United Nations founded?", Options: []string{"1919", "1945", "1950", "1960"}, Correct: 1},
			{Prompt: "Who was the first President of independent India?", Options: []string{"Jawaharlal Nehru", "Rajendra Prasad", "Mahatma Gandhi", "Sardar Patel"}, Correct: 1},
			{Prompt: "Which civilization developed democracy?", Options: []string{"Roman", "Greek", "Egyptian", "Persian"}, Correct: 1},
			{Prompt: "When did the Cold War end?", Options: []string{"1985", "1989", "1991", "1995"}, Correct: 2},
		},
		DifficultyHard: {
			{Prompt: "Who was the first woman to win a Nobel Prize?", Options: []string{"Marie Curie", "Rosalind Franklin", "Jane Goodall", "Ada Lovelace"}, Correct: 0},
			{Prompt: "When did the Byzantine Empire fall?", Options: []string{"476 AD", "1066 AD", "1204 AD", "1453 AD"}, Correct: 3},
			{Prompt: "Who wrote \"The Prince\"?", Options: []string{"Machiavelli", "Plato", "Aristotle", "Voltaire"}, Correct: 0},
			{Prompt: "Which treaty ended World War I?", Options: []string{"Treaty of Versailles", "Treaty of Paris", "Treaty of Ghent", "Treaty of Tordesillas"}, Correct: 0},
			{Prompt: "Who was the last Tsar of Russia?", Options: []string{"Peter the Great", "Nicholas II", "Alexander II", "Ivan the Terrible"}, Correct: 1},
			{Prompt: "When did the Industrial Revolution begin?", Options: []string{"16th century", "17th century", "18th century", "19th century"}, Correct: 2},
			{Prompt: "Who discovered penicillin?", Options: []string{"Alexander Fleming", "Louis Pasteur", "Robert Koch", "Joseph Lister"}, Correct: 0},
			{Prompt: "Which civilization built the city of Carthage?", Options: []string{"Greek", "Roman", "Phoenician", "Egyptian"}, Correct: 2},
			{Prompt: "When was the Russian Revolution?", Options: []string{"1905", "1917", "1922", "1939"}, Correct: 1},
			{Prompt: "Who was the first Emperor of China?", Options: []string{"Qin Shi Huang", "Han Wudi", "Tang Taizong", "Kangxi Emperor"}, Correct: 0},
			{Prompt: "Which war featured the Battle of Waterloo?", Options: []string{"Seven Years War", "Napoleonic Wars", "Crimean War", "Franco-Prussian War"}, Correct: 1},
			{Prompt: "When did the American Civil War end?", Options: []string{"1863", "1865", "1867", "1870"}, Correct: 1},
			{Prompt: "Who was the first female Prime Minister in the world?", Options: []string{"Indira Gandhi", "Margaret Thatcher", "Sirimavo Bandaranaike", "Golda Meir"}, Correct: 2},
			{Prompt: "Which empire was ruled by Suleiman the Magnificent?", Options: []string{"Mughal", "Ottoman", "Safavid", "Byzantine"}, Correct: 1},
			{Prompt: "When was the European Union formed?", Options: []string{"1945", "1957", "1973", "1993"}, Correct: 3},
		},
	},
	"English": {
		DifficultyEasy: {
			{Prompt: "What is the opposite of \"hot\"?", Options: []string{"Warm", "Cool", "Cold", "Freezing"}, Correct: 2},
			{Prompt: "Which word is a noun?", Options: []string{"run", "beautiful", "quickly", "book"}, Correct: 3},
			{Prompt: "What is the plural of \"child\"?", Options: []string{"childs", "children", "childes", "child"}, Correct: 1},
			{Prompt: "Which is a verb?", Options: []string{"happy", "run", "blue", "quickly"}, Correct: 1},
			{Prompt: "What is the past tense of \"go\"?", Options: []string{"goed", "went", "gone", "going"}, Correct: 1},
			{Prompt: "Which word is an adjective?", Options: []string{"run", "beautiful", "quickly", "book"}, Correct: 1},
			{Prompt: "What is the synonym of \"big\"?", Options: []string{"small", "large", "tiny", "short"}, Correct: 1},
			{Prompt: "Which is a proper noun?", Options: []string{"city", "country", "London", "river"}, Correct: 2},
			{Prompt: "What is the plural of \"mouse\"?", Options: []string{"mouses", "mice", "mousees", "meece"}, Correct: 1},
			{Prompt: "Which word is an adverb?", Options: []string{"happy", "run", "quickly", "book"}, Correct: 2},
			{Prompt: "What is the antonym of \"day\"?", Options: []string{"light", "sun", "night", "morning"}, Correct: 2},
			{Prompt: "Which is a conjunction?", Options: []string{"and", "run", "blue", "quickly"}, Correct: 0},
			{Prompt: "What is the present tense of \"ran\"?", Options: []string{"run", "runned", "running", "runs"}, Correct: 0},
			{Prompt: "Which word is a preposition?", Options: []string{"in", "run", "blue", "quickly"}, Correct: 0},
			{Prompt: "What is the plural of \"person\"?", Options: []string{"persons", "people", "persones", "peoples"}, Correct: 1},
		},
		DifficultyMedium: {
			{Prompt: "Identify the verb: \"She quickly ran to the store.\"", Options: []string{"She", "quickly", "ran", "store"}, Correct: 2},
			{Prompt: "What is a synonym for \"happy\"?", Options: []string{"sad", "joyful", "angry", "tired"}, Correct: 1},
			{Prompt: "Which sentence is correct?", Options: []string{"He don't like apples.", "He doesn't like apples.", "He doesn't likes apples.", "He don't likes apples."}, Correct: 1},
			{Prompt: "What is the comparative form of \"good\"?", Options: []string{"gooder", "better", "more good", "best"}, Correct: 1},
			{Prompt: "Identify the metaphor: \"Time is money.\"", Options: []string{"Simile", "Metaphor", "Personification", "Alliteration"}, Correct: 1},
			{Prompt: "What is the past participle of \"write\"?", Options: []string{"wrote", "written", "writed", "writing"}, Correct: 1},
			{Prompt: "Which is a complex sentence?", Options: []string{"I like apples.", "I like apples and oranges.", "Although I like apples, I prefer oranges.", "Apples are tasty."}, Correct: 2},
			{Prompt: "What is the antonym of \"benevolent\"?", Options: []string{"kind", "generous", "malevolent", "friendly"}, Correct: 2},
			{Prompt: "Identify the preposition: \"The book is on the table.\"", Options: []string{"book", "is", "on", "table"}, Correct: 2},
			{Prompt: "What is the superlative form of \"far\"?", Options: []string{"farrer", "farest", "further", "farthest"}, Correct: 3},
			{Prompt: "Which word is an interjection?", Options: []string{"Wow!", "run", "blue", "quickly"}, Correct: 0},
			{Prompt: "What is the direct object in \"She read the book.\"?", Options: []string{"She", "read", "the", "book"}, Correct: 3},
			{Prompt: "Identify the adverb: \"He speaks very clearly.\"", Options: []string{"He", "speaks", "very", "clearly"}, Correct: 3},
			{Prompt: "What is the plural of \"phenomenon\"?", Options: []string{"phenomenons", "phenomena", "phenomenones", "phenomenae"}, Correct: 1},
			{Prompt: "Which is an example of alliteration?", Options: []string{"She sells seashells.", "The cat sat on the mat.", "Time flies.", "The wind howled."}, Correct: 0},
		},
		DifficultyHard: {
			{Prompt: "What literary device is \"the stars danced playfully\"?", Options: []string{"Simile", "Metaphor", "Personification", "Alliteration"}, Correct: 2},
			{Prompt: "What is the subjunctive mood?", Options: []string{"Expressing facts", "Expressing wishes", "Expressing commands", "Expressing questions"}, Correct: 1},
			{Prompt: "Identify the oxymoron:", Options: []string{"Deafening silence", "Running quickly", "Very beautiful", "Extremely large"}, Correct: 0},
			{Prompt: "What is a synecdoche?", Options: []string{"Part represents whole", "Comparing without like/as", "Giving human traits", "Repeating sounds"}, Correct: 0},
			{Prompt: "Which is an example of iambic pentameter?", Options: []string{"Shall I compare thee to a summer's day?", "The cat sat on the mat", "Run quickly to the store", "Beautiful sunset in the sky"}, Correct: 0},
			{Prompt: "What is the difference between \"affect\" and \"effect\"?", Options: []string{"Affect is verb, effect is noun", "Affect is noun, effect is verb", "Both are verbs", "Both are nouns"}, Correct: 0},
			{Prompt: "Identify the dangling modifier:", Options: []string{"Running quickly, the finish line approached.", "The runner approached the finish line quickly.", "Quickly running, he approached the finish line.", "He approached the finish line running quickly."}, Correct: 0},
			{Prompt: "What is anaphora?", Options: []string{"Repetition at sentence start", "Repetition at sentence end", "Repetition of vowel sounds", "Repetition of consonant sounds"}, Correct: 0},
			{Prompt: "Which is passive voice?", Options: []string{"The ball was thrown by the boy.", "The boy threw the ball.", "The boy is throwing the ball.", "The boy will throw the ball."}, Correct: 0},
			{Prompt: "What is zeugma?", Options: []string{"One word modifies two others", "Repetition for emphasis", "Contradictory terms", "Exaggeration for effect"}, Correct: 0},
			{Prompt: "Identify the chiasmus:", Options: []string{"Ask not what your country can do for you...", "The early bird catches the worm.", "Time is money.", "She sells seashells."}, Correct: 0},
			{Prompt: "What is litotes?", Options: []string{"Understatement using negation", "Overstatement for effect", "Comparing two things", "Giving human traits"}, Correct: 0},
			{Prompt: "Which is an example of metonymy?", Options: []string{"The White House announced", "Time is money", "She is a rose", "The wind whispered"}, Correct: 0},
			{Prompt: "What is the difference between \"who\" and \"whom\"?", Options: []string{"Who is subject, whom is object", "Who is object, whom is subject", "Both are subjects", "Both are objects"}, Correct: 0},
			{Prompt: "Identify the anticlimax:", Options: []string{"He lost his family, his home, and his favorite tie.", "The hero saved the city and won the girl.", "The storm raged and lightning struck.", "She graduated with honors and got her dream job."}, Correct: 0},
		},
	},
}

// Topics returns the topics that have at least one question pool, sorted.
func Topics() []string {
	topics := make([]string, 0, len(pools))
	for topic := range pools {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
