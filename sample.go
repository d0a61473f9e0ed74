package convo

// DefaultMessage is the single card shown in preview mode.
var DefaultMessage = Message{Author: "Android", Body: "Jetpack compose"}

// SampleConversation returns the built-in conversation used when no
// message files are loaded.
func SampleConversation() Store {
	return NewStore(
		Message{Author: "Lexi", Body: "Test...Test...Test..."},
		Message{Author: "Lexi", Body: "List of Android versions:\n\n" +
			"- Android KitKat (API 19)\n" +
			"- Android Lollipop (API 21)\n" +
			"- Android Marshmallow (API 23)\n" +
			"- Android Nougat (API 24)\n" +
			"- Android Oreo (API 26)\n" +
			"- Android Pie (API 28)\n" +
			"- Android 10 (API 29)\n" +
			"- Android 11 (API 30)\n" +
			"- Android 12 (API 31)"},
		Message{Author: "Lexi", Body: "I think Kotlin is my favorite programming language.\n\n" +
			"It's so much fun!"},
		Message{Author: "Lexi", Body: "Searching for alternatives to *XML layouts*..."},
		Message{Author: "Lexi", Body: "Hey, take a look at **Jetpack Compose**, it's great!\n\n" +
			"It's the Android's modern toolkit for building native UI. " +
			"It simplifies and accelerates UI development on Android. " +
			"Less code, powerful tools, and intuitive Kotlin APIs :)"},
		Message{Author: "Lexi", Body: "It's available from API 21+ :)"},
		Message{Author: "Lexi", Body: "Writing Kotlin for UI seems so natural, Compose where have you been all my life?"},
		Message{Author: "Lexi", Body: "Android Studio next version's name is Arctic Fox"},
		Message{Author: "Lexi", Body: "Android Studio Arctic Fox tooling for Compose is top notch ^_^"},
		Message{Author: "Lexi", Body: "I didn't know you can now run the emulator directly from Android Studio"},
		Message{Author: "Lexi", Body: "Compose Previews are great to check quickly how a composable layout looks like"},
		Message{Author: "Lexi", Body: "Previews are also interactive after enabling the experimental setting"},
		Message{Author: "Lexi", Body: "Have you tried writing build.gradle with KTS?"},
		Message{Author: "Messi", Body: "Hey, Hello world"},
	)
}
