package challenge

func init() {
	c = buildCatalog(seedCategories(), seedChallenges())
}

func seedCategories() []Category {
	return []Category{
		{
			ID:          "arrays",
			Name:        "Arrays & Strings",
			Description: "Iteration, two pointers, and in-place manipulation",
		},
		{
			ID:          "hashing",
			Name:        "Hash Maps & Sets",
			Description: "Lookups, counting, and deduplication",
		},
		{
			ID:          "recursion",
			Name:        "Recursion & Dynamic Programming",
			Description: "Self-similar problems and memoization",
		},
	}
}

func seedChallenges() []Challenge {
	return []Challenge{
		{
			ID:         "reverse-words",
			CategoryID: "arrays",
			Title:      "Reverse Words",
			Description: "Given a sentence, print the words in reverse order, " +
				"separated by single spaces. Input arrives on one line of stdin.",
			Difficulty: "easy",
			StarterCode: map[string]string{
				LangJavaScript: "function reverseWords(sentence) {\n  // your code here\n}\n\nconst line = require('fs').readFileSync(0, 'utf8').trim();\nconsole.log(reverseWords(line));\n",
				LangPython:     "import sys\n\ndef reverse_words(sentence):\n    # your code here\n    pass\n\nprint(reverse_words(sys.stdin.readline().strip()))\n",
				LangGo:         "package main\n\nimport (\n\t\"bufio\"\n\t\"fmt\"\n\t\"os\"\n)\n\nfunc reverseWords(sentence string) string {\n\t// your code here\n\treturn \"\"\n}\n\nfunc main() {\n\tsc := bufio.NewScanner(os.Stdin)\n\tsc.Scan()\n\tfmt.Println(reverseWords(sc.Text()))\n}\n",
			},
			TestCases: []TestCase{
				{ID: "rw-1", Input: "the quick brown fox", ExpectedOutput: "fox brown quick the"},
				{ID: "rw-2", Input: "hello", ExpectedOutput: "hello"},
				{ID: "rw-3", Input: "a b", ExpectedOutput: "b a"},
			},
			Hints: []string{
				"Split the sentence into a list of words first.",
				"Walk the word list from the end, or reverse it in place.",
			},
			ExpectedMinutes: 10,
		},
		{
			ID:         "max-subarray",
			CategoryID: "arrays",
			Title:      "Maximum Subarray Sum",
			Description: "Given a line of space-separated integers, print the " +
				"largest sum of any contiguous subarray.",
			Difficulty: "medium",
			StarterCode: map[string]string{
				LangJavaScript: "function maxSubarray(nums) {\n  // your code here\n}\n\nconst nums = require('fs').readFileSync(0, 'utf8').trim().split(/\\s+/).map(Number);\nconsole.log(maxSubarray(nums));\n",
				LangPython:     "import sys\n\ndef max_subarray(nums):\n    # your code here\n    pass\n\nnums = [int(x) for x in sys.stdin.read().split()]\nprint(max_subarray(nums))\n",
				LangGo:         "package main\n\nimport (\n\t\"fmt\"\n)\n\nfunc maxSubarray(nums []int) int {\n\t// your code here\n\treturn 0\n}\n\nfunc main() {\n\tvar nums []int\n\tvar n int\n\tfor {\n\t\tif _, err := fmt.Scan(&n); err != nil {\n\t\t\tbreak\n\t\t}\n\t\tnums = append(nums, n)\n\t}\n\tfmt.Println(maxSubarray(nums))\n}\n",
			},
			TestCases: []TestCase{
				{ID: "ms-1", Input: "-2 1 -3 4 -1 2 1 -5 4", ExpectedOutput: "6"},
				{ID: "ms-2", Input: "-3 -1 -2", ExpectedOutput: "-1"},
				{ID: "ms-3", Input: "5", ExpectedOutput: "5"},
			},
			Hints: []string{
				"Track the best sum ending at the current index.",
				"A running sum that goes negative never helps; restart it.",
				"This is Kadane's algorithm: one pass, two variables.",
			},
			ExpectedMinutes: 20,
		},
		{
			ID:         "two-sum",
			CategoryID: "hashing",
			Title:      "Two Sum",
			Description: "First line: a target integer. Second line: space-separated " +
				"integers. Print the zero-based indices of the two numbers that add " +
				"to the target, smaller index first.",
			Difficulty: "easy",
			StarterCode: map[string]string{
				LangJavaScript: "function twoSum(nums, target) {\n  // your code here\n}\n\nconst lines = require('fs').readFileSync(0, 'utf8').trim().split('\\n');\nconst target = Number(lines[0]);\nconst nums = lines[1].split(/\\s+/).map(Number);\nconsole.log(twoSum(nums, target).join(' '));\n",
				LangPython:     "import sys\n\ndef two_sum(nums, target):\n    # your code here\n    pass\n\nlines = sys.stdin.read().splitlines()\ntarget = int(lines[0])\nnums = [int(x) for x in lines[1].split()]\nprint(*two_sum(nums, target))\n",
				LangGo:         "package main\n\nimport (\n\t\"fmt\"\n)\n\nfunc twoSum(nums []int, target int) (int, int) {\n\t// your code here\n\treturn 0, 0\n}\n\nfunc main() {\n\tvar target int\n\tfmt.Scan(&target)\n\tvar nums []int\n\tvar n int\n\tfor {\n\t\tif _, err := fmt.Scan(&n); err != nil {\n\t\t\tbreak\n\t\t}\n\t\tnums = append(nums, n)\n\t}\n\ti, j := twoSum(nums, target)\n\tfmt.Println(i, j)\n}\n",
			},
			TestCases: []TestCase{
				{ID: "ts-1", Input: "9\n2 7 11 15", ExpectedOutput: "0 1"},
				{ID: "ts-2", Input: "6\n3 2 4", ExpectedOutput: "1 2"},
			},
			Hints: []string{
				"For each number, what value would complete the pair?",
				"A map from value to index turns the lookup into O(1).",
			},
			ExpectedMinutes: 15,
		},
		{
			ID:         "first-unique",
			CategoryID: "hashing",
			Title:      "First Unique Character",
			Description: "Given a lowercase word, print the zero-based index of the " +
				"first character that appears exactly once, or -1 if there is none.",
			Difficulty: "easy",
			StarterCode: map[string]string{
				LangJavaScript: "function firstUnique(word) {\n  // your code here\n}\n\nconst word = require('fs').readFileSync(0, 'utf8').trim();\nconsole.log(firstUnique(word));\n",
				LangPython:     "import sys\n\ndef first_unique(word):\n    # your code here\n    pass\n\nprint(first_unique(sys.stdin.readline().strip()))\n",
				LangGo:         "package main\n\nimport (\n\t\"bufio\"\n\t\"fmt\"\n\t\"os\"\n)\n\nfunc firstUnique(word string) int {\n\t// your code here\n\treturn -1\n}\n\nfunc main() {\n\tsc := bufio.NewScanner(os.Stdin)\n\tsc.Scan()\n\tfmt.Println(firstUnique(sc.Text()))\n}\n",
			},
			TestCases: []TestCase{
				{ID: "fu-1", Input: "leetcode", ExpectedOutput: "0"},
				{ID: "fu-2", Input: "loveleetcode", ExpectedOutput: "2"},
				{ID: "fu-3", Input: "aabb", ExpectedOutput: "-1"},
			},
			Hints: []string{
				"Count every character first, then scan again in order.",
			},
			ExpectedMinutes: 10,
		},
		{
			ID:         "climb-stairs",
			CategoryID: "recursion",
			Title:      "Climbing Stairs",
			Description: "You climb a staircase of n steps, taking 1 or 2 steps at a " +
				"time. Given n on stdin, print the number of distinct ways to reach " +
				"the top.",
			Difficulty: "medium",
			StarterCode: map[string]string{
				LangJavaScript: "function climbStairs(n) {\n  // your code here\n}\n\nconst n = Number(require('fs').readFileSync(0, 'utf8').trim());\nconsole.log(climbStairs(n));\n",
				LangPython:     "import sys\n\ndef climb_stairs(n):\n    # your code here\n    pass\n\nprint(climb_stairs(int(sys.stdin.readline())))\n",
				LangGo:         "package main\n\nimport (\n\t\"fmt\"\n)\n\nfunc climbStairs(n int) int {\n\t// your code here\n\treturn 0\n}\n\nfunc main() {\n\tvar n int\n\tfmt.Scan(&n)\n\tfmt.Println(climbStairs(n))\n}\n",
			},
			TestCases: []TestCase{
				{ID: "cs-1", Input: "2", ExpectedOutput: "2"},
				{ID: "cs-2", Input: "5", ExpectedOutput: "8"},
				{ID: "cs-3", Input: "10", ExpectedOutput: "89"},
			},
			Hints: []string{
				"Ways to reach step n = ways to reach n-1 plus ways to reach n-2.",
				"Naive recursion recomputes the same values; remember them.",
				"Two rolling variables are enough; no array needed.",
			},
			ExpectedMinutes: 15,
		},
		{
			ID:         "coin-change",
			CategoryID: "recursion",
			Title:      "Coin Change",
			Description: "First line: a target amount. Second line: space-separated " +
				"coin denominations. Print the fewest coins needed to make the " +
				"amount, or -1 if it cannot be made.",
			Difficulty: "hard",
			StarterCode: map[string]string{
				LangJavaScript: "function coinChange(coins, amount) {\n  // your code here\n}\n\nconst lines = require('fs').readFileSync(0, 'utf8').trim().split('\\n');\nconst amount = Number(lines[0]);\nconst coins = lines[1].split(/\\s+/).map(Number);\nconsole.log(coinChange(coins, amount));\n",
				LangPython:     "import sys\n\ndef coin_change(coins, amount):\n    # your code here\n    pass\n\nlines = sys.stdin.read().splitlines()\namount = int(lines[0])\ncoins = [int(x) for x in lines[1].split()]\nprint(coin_change(coins, amount))\n",
				LangGo:         "package main\n\nimport (\n\t\"fmt\"\n)\n\nfunc coinChange(coins []int, amount int) int {\n\t// your code here\n\treturn -1\n}\n\nfunc main() {\n\tvar amount int\n\tfmt.Scan(&amount)\n\tvar coins []int\n\tvar n int\n\tfor {\n\t\tif _, err := fmt.Scan(&n); err != nil {\n\t\t\tbreak\n\t\t}\n\t\tcoins = append(coins, n)\n\t}\n\tfmt.Println(coinChange(coins, amount))\n}\n",
			},
			TestCases: []TestCase{
				{ID: "cc-1", Input: "11\n1 2 5", ExpectedOutput: "3"},
				{ID: "cc-2", Input: "3\n2", ExpectedOutput: "-1"},
				{ID: "cc-3", Input: "0\n1", ExpectedOutput: "0"},
			},
			Hints: []string{
				"Best for amount a = 1 + best over (a - coin) for each coin.",
				"Build bottom-up from amount 0; unreachable amounts stay infinite.",
			},
			ExpectedMinutes: 25,
		},
	}
}
