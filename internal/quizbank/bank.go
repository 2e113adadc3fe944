package quizbank

// bank is the full fixed question table: 8 questions per topic, 8 topics.
var bank = []Question{
	// Algebra
	{ID: "alg-1", Topic: TopicAlgebra, Prompt: "Solve: 2x + 5 = 13", Options: [4]string{"x = 3", "x = 4", "x = 5", "x = 6"}, CorrectOption: 1, Difficulty: DifficultyEasy},
	{ID: "alg-2", Topic: TopicAlgebra, Prompt: "Factor: x² - 9", Options: [4]string{"(x+3)(x-3)", "(x-3)²", "(x+9)(x-1)", "(x+3)²"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "alg-3", Topic: TopicAlgebra, Prompt: "Solve: x² - 5x + 6 = 0", Options: [4]string{"x = 2, 3", "x = 1, 6", "x = -2, -3", "x = 3, 4"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "alg-4", Topic: TopicAlgebra, Prompt: "Simplify: (3x²y)(4xy³)", Options: [4]string{"7x³y⁴", "12x³y⁴", "12x²y³", "7x²y⁴"}, CorrectOption: 1, Difficulty: DifficultyMedium},
	{ID: "alg-5", Topic: TopicAlgebra, Prompt: "If f(x) = 2x² - 3x + 1, find f(2)", Options: [4]string{"3", "5", "7", "9"}, CorrectOption: 0, Difficulty: DifficultyHard},
	{ID: "alg-6", Topic: TopicAlgebra, Prompt: "Solve the system: x + y = 7, x - y = 3", Options: [4]string{"x=5, y=2", "x=4, y=3", "x=6, y=1", "x=3, y=4"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "alg-7", Topic: TopicAlgebra, Prompt: "What is the slope of 3x - 2y = 6?", Options: [4]string{"3/2", "-3/2", "2/3", "-2/3"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "alg-8", Topic: TopicAlgebra, Prompt: "Expand: (x + 4)²", Options: [4]string{"x² + 8x + 16", "x² + 4x + 16", "x² + 16", "x² + 8x + 8"}, CorrectOption: 0, Difficulty: DifficultyEasy},

	// Geometry
	{ID: "geo-1", Topic: TopicGeometry, Prompt: "Area of a circle with radius 5?", Options: [4]string{"25π", "10π", "15π", "20π"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "geo-2", Topic: TopicGeometry, Prompt: "Sum of interior angles of a hexagon?", Options: [4]string{"540°", "720°", "900°", "360°"}, CorrectOption: 1, Difficulty: DifficultyMedium},
	{ID: "geo-3", Topic: TopicGeometry, Prompt: "Hypotenuse of a right triangle with legs 3 and 4?", Options: [4]string{"5", "6", "7", "8"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "geo-4", Topic: TopicGeometry, Prompt: "Volume of a sphere with radius 3?", Options: [4]string{"36π", "24π", "18π", "12π"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "geo-5", Topic: TopicGeometry, Prompt: "Two angles of a triangle are 60° and 80°. Third angle?", Options: [4]string{"40°", "50°", "60°", "70°"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "geo-6", Topic: TopicGeometry, Prompt: "Perimeter of a rectangle 8 × 5?", Options: [4]string{"26", "40", "13", "80"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "geo-7", Topic: TopicGeometry, Prompt: "A regular polygon has interior angles of 108°. How many sides?", Options: [4]string{"5", "6", "7", "8"}, CorrectOption: 0, Difficulty: DifficultyHard},
	{ID: "geo-8", Topic: TopicGeometry, Prompt: "Distance between (0,0) and (6,8)?", Options: [4]string{"10", "12", "8", "14"}, CorrectOption: 0, Difficulty: DifficultyMedium},

	// Calculus
	{ID: "cal-1", Topic: TopicCalculus, Prompt: "Derivative of x³?", Options: [4]string{"3x²", "3x", "x²", "2x³"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "cal-2", Topic: TopicCalculus, Prompt: "∫2x dx = ?", Options: [4]string{"x² + C", "2x² + C", "x + C", "x²/2 + C"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "cal-3", Topic: TopicCalculus, Prompt: "Derivative of sin(x)?", Options: [4]string{"cos(x)", "-cos(x)", "-sin(x)", "tan(x)"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "cal-4", Topic: TopicCalculus, Prompt: "lim (x→0) sin(x)/x = ?", Options: [4]string{"1", "0", "∞", "-1"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "cal-5", Topic: TopicCalculus, Prompt: "Derivative of eˣ?", Options: [4]string{"eˣ", "xeˣ", "eˣ⁻¹", "1/eˣ"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "cal-6", Topic: TopicCalculus, Prompt: "∫ from 0 to 1 of x² dx = ?", Options: [4]string{"1/3", "1/2", "1/4", "1"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "cal-7", Topic: TopicCalculus, Prompt: "Derivative of ln(x)?", Options: [4]string{"1/x", "x", "ln(x)", "1/x²"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "cal-8", Topic: TopicCalculus, Prompt: "Critical point of f(x) = x² - 4x + 3?", Options: [4]string{"x = 2", "x = 1", "x = 3", "x = 4"}, CorrectOption: 0, Difficulty: DifficultyHard},

	// Statistics
	{ID: "sta-1", Topic: TopicStatistics, Prompt: "Mean of 2, 4, 6, 8, 10?", Options: [4]string{"6", "5", "7", "8"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "sta-2", Topic: TopicStatistics, Prompt: "Median of 3, 7, 1, 9, 5?", Options: [4]string{"5", "3", "7", "9"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "sta-3", Topic: TopicStatistics, Prompt: "P(A) = 0.3, P(B) = 0.4, independent. P(A∩B)?", Options: [4]string{"0.12", "0.7", "0.1", "0.5"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "sta-4", Topic: TopicStatistics, Prompt: "Standard deviation measures?", Options: [4]string{"Data spread", "Data center", "Data max", "Data sum"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "sta-5", Topic: TopicStatistics, Prompt: "In normal distribution, ~68% data is within?", Options: [4]string{"1 std dev", "2 std dev", "3 std dev", "0.5 std dev"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "sta-6", Topic: TopicStatistics, Prompt: "Mode of: 2, 3, 3, 4, 5, 3, 6?", Options: [4]string{"3", "4", "2", "5"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "sta-7", Topic: TopicStatistics, Prompt: "Probability of rolling a 6 on a fair die?", Options: [4]string{"1/6", "1/3", "1/2", "1/4"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "sta-8", Topic: TopicStatistics, Prompt: "A z-score of 0 means?", Options: [4]string{"At the mean", "1 std above", "1 std below", "Outlier"}, CorrectOption: 0, Difficulty: DifficultyMedium},

	// Trigonometry
	{ID: "tri-1", Topic: TopicTrigonometry, Prompt: "sin(30°) = ?", Options: [4]string{"1/2", "√3/2", "1/√2", "√3"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "tri-2", Topic: TopicTrigonometry, Prompt: "cos(60°) = ?", Options: [4]string{"1/2", "√3/2", "0", "1"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "tri-3", Topic: TopicTrigonometry, Prompt: "tan(45°) = ?", Options: [4]string{"1", "0", "√3", "1/2"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "tri-4", Topic: TopicTrigonometry, Prompt: "sin²(x) + cos²(x) = ?", Options: [4]string{"1", "0", "2", "sin(2x)"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "tri-5", Topic: TopicTrigonometry, Prompt: "Period of sin(x)?", Options: [4]string{"2π", "π", "π/2", "4π"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "tri-6", Topic: TopicTrigonometry, Prompt: "sin(90°) = ?", Options: [4]string{"1", "0", "-1", "1/2"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "tri-7", Topic: TopicTrigonometry, Prompt: "If sin(θ) = 3/5 (right triangle), cos(θ) = ?", Options: [4]string{"4/5", "3/4", "5/3", "1/5"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "tri-8", Topic: TopicTrigonometry, Prompt: "sec(x) = ?", Options: [4]string{"1/cos(x)", "1/sin(x)", "cos(x)", "sin(x)"}, CorrectOption: 0, Difficulty: DifficultyMedium},

	// Linear Algebra
	{ID: "lin-1", Topic: TopicLinearAlgebra, Prompt: "Transpose of [[1,2],[3,4]]?", Options: [4]string{"[[1,3],[2,4]]", "[[4,3],[2,1]]", "[[2,1],[4,3]]", "[[1,2],[3,4]]"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "lin-2", Topic: TopicLinearAlgebra, Prompt: "Determinant of [[2,1],[1,3]]?", Options: [4]string{"5", "6", "7", "4"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "lin-3", Topic: TopicLinearAlgebra, Prompt: "Identity matrix property: AI = ?", Options: [4]string{"A", "I", "0", "A²"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "lin-4", Topic: TopicLinearAlgebra, Prompt: "Dot product of [1,2,3] · [4,5,6]?", Options: [4]string{"32", "28", "30", "36"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "lin-5", Topic: TopicLinearAlgebra, Prompt: "Rank of a 3×3 identity matrix?", Options: [4]string{"3", "1", "0", "9"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "lin-6", Topic: TopicLinearAlgebra, Prompt: "A vector space must contain which element?", Options: [4]string{"Zero vector", "Unit vector", "Basis vector", "Null vector"}, CorrectOption: 0, Difficulty: DifficultyHard},
	{ID: "lin-7", Topic: TopicLinearAlgebra, Prompt: "Eigenvalue equation: Av = ?", Options: [4]string{"λv", "v/λ", "A/v", "λA"}, CorrectOption: 0, Difficulty: DifficultyHard},
	{ID: "lin-8", Topic: TopicLinearAlgebra, Prompt: "[[1,0],[0,-1]] applied to (2,3)?", Options: [4]string{"(2,-3)", "(-2,3)", "(-2,-3)", "(2,3)"}, CorrectOption: 0, Difficulty: DifficultyMedium},

	// Probability
	{ID: "pro-1", Topic: TopicProbability, Prompt: "Flipping 2 coins, P(both heads)?", Options: [4]string{"1/4", "1/2", "3/4", "1/3"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "pro-2", Topic: TopicProbability, Prompt: "Drawing a red card from a deck (52 cards)?", Options: [4]string{"1/2", "1/4", "1/13", "1/3"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "pro-3", Topic: TopicProbability, Prompt: "P(A∪B) if P(A)=0.5, P(B)=0.4, P(A∩B)=0.2?", Options: [4]string{"0.7", "0.9", "0.5", "0.6"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "pro-4", Topic: TopicProbability, Prompt: "P(A|B) means?", Options: [4]string{"P(A) given B occurred", "P(A) × P(B)", "P(A) + P(B)", "P(A) - P(B)"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "pro-5", Topic: TopicProbability, Prompt: "Expected value of a fair die?", Options: [4]string{"3.5", "3", "4", "2.5"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "pro-6", Topic: TopicProbability, Prompt: "Complement rule: P(A') = ?", Options: [4]string{"1 - P(A)", "P(A) - 1", "1 + P(A)", "P(A)"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "pro-7", Topic: TopicProbability, Prompt: "Binomial distribution needs n, p, and?", Options: [4]string{"k (successes)", "mean", "variance", "mode"}, CorrectOption: 0, Difficulty: DifficultyHard},
	{ID: "pro-8", Topic: TopicProbability, Prompt: "Mutually exclusive events: P(A∩B) = ?", Options: [4]string{"0", "1", "P(A)P(B)", "P(A)+P(B)"}, CorrectOption: 0, Difficulty: DifficultyMedium},

	// Number Theory
	{ID: "num-1", Topic: TopicNumberTheory, Prompt: "GCD of 12 and 18?", Options: [4]string{"6", "3", "9", "12"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "num-2", Topic: TopicNumberTheory, Prompt: "Is 97 prime?", Options: [4]string{"Yes", "No", "Neither", "Composite"}, CorrectOption: 0, Difficulty: DifficultyMedium},
	{ID: "num-3", Topic: TopicNumberTheory, Prompt: "LCM of 4 and 6?", Options: [4]string{"12", "6", "24", "8"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "num-4", Topic: TopicNumberTheory, Prompt: "What is 5! (5 factorial)?", Options: [4]string{"120", "60", "24", "720"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "num-5", Topic: TopicNumberTheory, Prompt: "Euler's theorem: aᵠ⁽ⁿ⁾ ≡ ? (mod n)", Options: [4]string{"1", "0", "a", "n"}, CorrectOption: 0, Difficulty: DifficultyHard},
	{ID: "num-6", Topic: TopicNumberTheory, Prompt: "Sum of first 10 natural numbers?", Options: [4]string{"55", "50", "45", "60"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "num-7", Topic: TopicNumberTheory, Prompt: "Which is NOT a prime: 2, 3, 5, 9?", Options: [4]string{"9", "2", "3", "5"}, CorrectOption: 0, Difficulty: DifficultyEasy},
	{ID: "num-8", Topic: TopicNumberTheory, Prompt: "Fermat's Little Theorem: aᵖ ≡ ? (mod p), p prime", Options: [4]string{"a", "1", "0", "p"}, CorrectOption: 0, Difficulty: DifficultyHard},
}
