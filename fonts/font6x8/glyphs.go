package font6x8

// ascii holds 0x20..0x7E as five column bytes each, top row in bit 0.
var ascii = [95][5]byte{
	{0x00, 0x00, 0x00, 0x00, 0x00}, // ' '
	{0x00, 0x00, 0x5F, 0x00, 0x00}, // !
	{0x00, 0x07, 0x00, 0x07, 0x00}, // "
	{0x14, 0x7F, 0x14, 0x7F, 0x14}, // #
	{0x24, 0x2A, 0x7F, 0x2A, 0x12}, // $
	{0x23, 0x13, 0x08, 0x64, 0x62}, // %
	{0x36, 0x49, 0x56, 0x20, 0x50}, // &
	{0x00, 0x08, 0x07, 0x03, 0x00}, // '
	{0x00, 0x1C, 0x22, 0x41, 0x00}, // (
	{0x00, 0x41, 0x22, 0x1C, 0x00}, // )
	{0x2A, 0x1C, 0x7F, 0x1C, 0x2A}, // *
	{0x08, 0x08, 0x3E, 0x08, 0x08}, // +
	{0x00, 0x80, 0x70, 0x30, 0x00}, // ,
	{0x08, 0x08, 0x08, 0x08, 0x08}, // -
	{0x00, 0x00, 0x60, 0x60, 0x00}, // .
	{0x20, 0x10, 0x08, 0x04, 0x02}, // /
	{0x3E, 0x51, 0x49, 0x45, 0x3E}, // 0
	{0x00, 0x42, 0x7F, 0x40, 0x00}, // 1
	{0x72, 0x49, 0x49, 0x49, 0x46}, // 2
	{0x21, 0x41, 0x49, 0x4D, 0x33}, // 3
	{0x18, 0x14, 0x12, 0x7F, 0x10}, // 4
	{0x27, 0x45, 0x45, 0x45, 0x39}, // 5
	{0x3C, 0x4A, 0x49, 0x49, 0x31}, // 6
	{0x41, 0x21, 0x11, 0x09, 0x07}, // 7
	{0x36, 0x49, 0x49, 0x49, 0x36}, // 8
	{0x46, 0x49, 0x49, 0x29, 0x1E}, // 9
	{0x00, 0x00, 0x14, 0x00, 0x00}, // :
	{0x00, 0x40, 0x34, 0x00, 0x00}, // ;
	{0x00, 0x08, 0x14, 0x22, 0x41}, // <
	{0x14, 0x14, 0x14, 0x14, 0x14}, // =
	{0x00, 0x41, 0x22, 0x14, 0x08}, // >
	{0x02, 0x01, 0x59, 0x09, 0x06}, // ?
	{0x3E, 0x41, 0x5D, 0x59, 0x4E}, // @
	{0x7C, 0x12, 0x11, 0x12, 0x7C}, // A
	{0x7F, 0x49, 0x49, 0x49, 0x36}, // B
	{0x3E, 0x41, 0x41, 0x41, 0x22}, // C
	{0x7F, 0x41, 0x41, 0x41, 0x3E}, // D
	{0x7F, 0x49, 0x49, 0x49, 0x41}, // E
	{0x7F, 0x09, 0x09, 0x09, 0x01}, // F
	{0x3E, 0x41, 0x41, 0x51, 0x73}, // G
	{0x7F, 0x08, 0x08, 0x08, 0x7F}, // H
	{0x00, 0x41, 0x7F, 0x41, 0x00}, // I
	{0x20, 0x40, 0x41, 0x3F, 0x01}, // J
	{0x7F, 0x08, 0x14, 0x22, 0x41}, // K
	{0x7F, 0x40, 0x40, 0x40, 0x40}, // L
	{0x7F, 0x02, 0x1C, 0x02, 0x7F}, // M
	{0x7F, 0x04, 0x08, 0x10, 0x7F}, // N
	{0x3E, 0x41, 0x41, 0x41, 0x3E}, // O
	{0x7F, 0x09, 0x09, 0x09, 0x06}, // P
	{0x3E, 0x41, 0x51, 0x21, 0x5E}, // Q
	{0x7F, 0x09, 0x19, 0x29, 0x46}, // R
	{0x26, 0x49, 0x49, 0x49, 0x32}, // S
	{0x03, 0x01, 0x7F, 0x01, 0x03}, // T
	{0x3F, 0x40, 0x40, 0x40, 0x3F}, // U
	{0x1F, 0x20, 0x40, 0x20, 0x1F}, // V
	{0x3F, 0x40, 0x38, 0x40, 0x3F}, // W
	{0x63, 0x14, 0x08, 0x14, 0x63}, // X
	{0x03, 0x04, 0x78, 0x04, 0x03}, // Y
	{0x61, 0x59, 0x49, 0x4D, 0x43}, // Z
	{0x00, 0x7F, 0x41, 0x41, 0x41}, // [
	{0x02, 0x04, 0x08, 0x10, 0x20}, // backslash
	{0x00, 0x41, 0x41, 0x41, 0x7F}, // ]
	{0x04, 0x02, 0x01, 0x02, 0x04}, // ^
	{0x40, 0x40, 0x40, 0x40, 0x40}, // _
	{0x00, 0x03, 0x07, 0x08, 0x00}, // `
	{0x20, 0x54, 0x54, 0x78, 0x40}, // a
	{0x7F, 0x28, 0x44, 0x44, 0x38}, // b
	{0x38, 0x44, 0x44, 0x44, 0x28}, // c
	{0x38, 0x44, 0x44, 0x28, 0x7F}, // d
	{0x38, 0x54, 0x54, 0x54, 0x18}, // e
	{0x00, 0x08, 0x7E, 0x09, 0x02}, // f
	{0x18, 0xA4, 0xA4, 0x9C, 0x78}, // g
	{0x7F, 0x08, 0x04, 0x04, 0x78}, // h
	{0x00, 0x44, 0x7D, 0x40, 0x00}, // i
	{0x20, 0x40, 0x40, 0x3D, 0x00}, // j
	{0x7F, 0x10, 0x28, 0x44, 0x00}, // k
	{0x00, 0x41, 0x7F, 0x40, 0x00}, // l
	{0x7C, 0x04, 0x78, 0x04, 0x78}, // m
	{0x7C, 0x08, 0x04, 0x04, 0x78}, // n
	{0x38, 0x44, 0x44, 0x44, 0x38}, // o
	{0xFC, 0x18, 0x24, 0x24, 0x18}, // p
	{0x18, 0x24, 0x24, 0x18, 0xFC}, // q
	{0x7C, 0x08, 0x04, 0x04, 0x08}, // r
	{0x48, 0x54, 0x54, 0x54, 0x24}, // s
	{0x04, 0x04, 0x3F, 0x44, 0x24}, // t
	{0x3C, 0x40, 0x40, 0x20, 0x7C}, // u
	{0x1C, 0x20, 0x40, 0x20, 0x1C}, // v
	{0x3C, 0x40, 0x30, 0x40, 0x3C}, // w
	{0x44, 0x28, 0x10, 0x28, 0x44}, // x
	{0x4C, 0x90, 0x90, 0x90, 0x7C}, // y
	{0x44, 0x64, 0x54, 0x4C, 0x44}, // z
	{0x00, 0x08, 0x36, 0x41, 0x00}, // {
	{0x00, 0x00, 0x77, 0x00, 0x00}, // |
	{0x00, 0x41, 0x36, 0x08, 0x00}, // }
	{0x02, 0x01, 0x02, 0x04, 0x02}, // ~
}

// extended holds the CP1251 upper half, keyed by code page byte.
var extended = map[byte]string{
	0x85: "..... ..... ..... ..... ..... ..... X.X.X", // …
	0x96: "..... ..... ..... .XXX. ..... ..... .....", // –
	0x97: "..... ..... ..... XXXXX ..... ..... .....", // —
	0xA0: "..... ..... ..... ..... ..... ..... .....", // no-break space
	0xA8: ".X.X. ..... XXXXX X.... XXXX. X.... XXXXX", // Ё
	0xA9: ".XXX. X...X X.X.X XX..X X.X.X X...X .XXX.", // ©
	0xAB: "..... ..X.X .X.X. X.X.. .X.X. ..X.X .....", // «
	0xAE: ".XXX. X...X XXX.X XX..X XX.XX X...X .XXX.", // ®
	0xB0: ".XX.. X..X. X..X. .XX.. ..... ..... .....", // °
	0xB1: "..X.. ..X.. XXXXX ..X.. ..X.. ..... XXXXX", // ±
	0xB7: "..... ..... ..... ..X.. ..... ..... .....", // ·
	0xB8: ".X.X. ..... .XXX. X...X XXXXX X.... .XXX.", // ё
	0xB9: "X..X. XX.X. X.XX. X..X. X..X. ....X ..XX.", // №
	0xBB: "..... X.X.. .X.X. ..X.X .X.X. X.X.. .....", // »

	0xC0: ".XXX. X...X X...X XXXXX X...X X...X X...X", // А
	0xC1: "XXXXX X.... X.... XXXX. X...X X...X XXXX.", // Б
	0xC2: "XXXX. X...X X...X XXXX. X...X X...X XXXX.", // В
	0xC3: "XXXXX X.... X.... X.... X.... X.... X....", // Г
	0xC4: ".XXX. .X.X. .X.X. .X.X. .X.X. XXXXX X...X", // Д
	0xC5: "XXXXX X.... X.... XXXX. X.... X.... XXXXX", // Е
	0xC6: "X.X.X X.X.X .XXX. ..X.. .XXX. X.X.X X.X.X", // Ж
	0xC7: ".XXX. X...X ....X ..XX. ....X X...X .XXX.", // З
	0xC8: "X...X X...X X..XX X.X.X XX..X X...X X...X", // И
	0xC9: ".X.X. ..X.. X...X X..XX X.X.X XX..X X...X", // Й
	0xCA: "X...X X..X. X.X.. XX... X.X.. X..X. X...X", // К
	0xCB: "..XXX .X..X .X..X .X..X .X..X .X..X X...X", // Л
	0xCC: "X...X XX.XX X.X.X X.X.X X...X X...X X...X", // М
	0xCD: "X...X X...X X...X XXXXX X...X X...X X...X", // Н
	0xCE: ".XXX. X...X X...X X...X X...X X...X .XXX.", // О
	0xCF: "XXXXX X...X X...X X...X X...X X...X X...X", // П
	0xD0: "XXXX. X...X X...X XXXX. X.... X.... X....", // Р
	0xD1: ".XXX. X...X X.... X.... X.... X...X .XXX.", // С
	0xD2: "XXXXX ..X.. ..X.. ..X.. ..X.. ..X.. ..X..", // Т
	0xD3: "X...X X...X X...X .XXXX ....X X...X .XXX.", // У
	0xD4: "..X.. .XXX. X.X.X X.X.X X.X.X .XXX. ..X..", // Ф
	0xD5: "X...X X...X .X.X. ..X.. .X.X. X...X X...X", // Х
	0xD6: "X..X. X..X. X..X. X..X. X..X. XXXXX ....X", // Ц
	0xD7: "X...X X...X X...X .XXXX ....X ....X ....X", // Ч
	0xD8: "X.X.X X.X.X X.X.X X.X.X X.X.X X.X.X XXXXX", // Ш
	0xD9: "X.X.X X.X.X X.X.X X.X.X X.X.X XXXXX ....X", // Щ
	0xDA: "XX... .X... .X... .XXX. .X..X .X..X .XXX.", // Ъ
	0xDB: "X...X X...X X...X XX..X X.X.X X.X.X XX..X", // Ы
	0xDC: "X.... X.... X.... XXXX. X...X X...X XXXX.", // Ь
	0xDD: ".XXX. X...X ....X ..XXX ....X X...X .XXX.", // Э
	0xDE: "X..X. X.X.X X.X.X XXX.X X.X.X X.X.X X..X.", // Ю
	0xDF: ".XXXX X...X X...X .XXXX ..X.X .X..X X...X", // Я

	0xE0: "..... ..... .XXX. ....X .XXXX X...X .XXXX", // а
	0xE1: "....X .XXX. X.... XXXX. X...X X...X .XXX.", // б
	0xE2: "..... ..... XXXX. X...X XXXX. X...X XXXX.", // в
	0xE3: "..... ..... XXXXX X.... X.... X.... X....", // г
	0xE4: "..... ..... .XXX. .X.X. .X.X. XXXXX X...X", // д
	0xE5: "..... ..... .XXX. X...X XXXXX X.... .XXX.", // е
	0xE6: "..... ..... X.X.X .XXX. ..X.. .XXX. X.X.X", // ж
	0xE7: "..... ..... XXXX. ....X ..XX. ....X XXXX.", // з
	0xE8: "..... ..... X...X X..XX X.X.X XX..X X...X", // и
	0xE9: "..... ..X.. X...X X..XX X.X.X XX..X X...X", // й
	0xEA: "..... ..... X..X. X.X.. XX... X.X.. X..X.", // к
	0xEB: "..... ..... ..XXX .X..X .X..X .X..X X...X", // л
	0xEC: "..... ..... X...X XX.XX X.X.X X...X X...X", // м
	0xED: "..... ..... X...X X...X XXXXX X...X X...X", // н
	0xEE: "..... ..... .XXX. X...X X...X X...X .XXX.", // о
	0xEF: "..... ..... XXXXX X...X X...X X...X X...X", // п
	0xF0: "..... ..... XXXX. X...X XXXX. X.... X....", // р
	0xF1: "..... ..... .XXX. X.... X.... X...X .XXX.", // с
	0xF2: "..... ..... XXXXX ..X.. ..X.. ..X.. ..X..", // т
	0xF3: "..... ..... X...X X...X .XXXX ....X .XXX.", // у
	0xF4: "..... ..X.. .XXX. X.X.X X.X.X .XXX. ..X..", // ф
	0xF5: "..... ..... X...X .X.X. ..X.. .X.X. X...X", // х
	0xF6: "..... ..... X..X. X..X. X..X. XXXXX ....X", // ц
	0xF7: "..... ..... X...X X...X .XXXX ....X ....X", // ч
	0xF8: "..... ..... X.X.X X.X.X X.X.X X.X.X XXXXX", // ш
	0xF9: "..... ..... X.X.X X.X.X X.X.X XXXXX ....X", // щ
	0xFA: "..... ..... XX... .XXX. .X..X .X..X .XXX.", // ъ
	0xFB: "..... ..... X...X XX..X X.X.X X.X.X XX..X", // ы
	0xFC: "..... ..... X.... XXXX. X...X X...X XXXX.", // ь
	0xFD: "..... ..... XXX.. ...X. .XXX. ...X. XXX..", // э
	0xFE: "..... ..... X..X. X.X.X XXX.X X.X.X X..X.", // ю
	0xFF: "..... ..... .XXXX X...X .XXXX .X..X X...X", // я
}
