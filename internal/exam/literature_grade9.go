package exam

import "github.com/quangkhoi2628-alt/Learn-Together-123/internal/model"

var literatureGrade9Midterm1 = []MockExam{
	{
		ID:     "nv9-gk1-de1-ocr-oe",
		Title:  "Đề 1 (Loigiaihay) - Giữa kì 1",
		Source: "Loigiaihay.com",
		Type:   TypeOpenEnded,
		OpenEnded: []model.OpenEndedQuestion{
			{
				Topic: "Đọc hiểu văn bản",
				Question: `**Đọc đoạn văn sau và trả lời các câu hỏi:**

**NGƯỜI ĂN XIN**

Một người ăn xin đã già. Đôi mắt ông đỏ hoe, nước mắt ông giàn giụa, đôi môi tái nhợt, áo quần tả tơi. Ông chìa tay xin tôi.

Tôi lục hết túi nọ đến túi kia, không có lấy một xu, không có cả khăn tay, chẳng có gì hết. Ông vẫn đợi tôi. Tôi chẳng biết làm thế nào. Bàn tay tôi run run nắm chặt lấy bàn tay nóng hổi của ông:

- Xin ông đừng giận cháu! Cháu không có gì cho ông cả.

Ông nhìn tôi chăm chăm đôi môi nở nụ cười:

- Cháu ơi, cảm ơn cháu! Như vậy là cháu đã cho lão rồi.

Khi ấy tôi chợt hiểu ra: cả tôi nữa tôi cũng vừa nhận được một cái gì đó của ông.

*(Theo Tuốc-ghê-nhép)*

---

**Câu 1:** Xác định phương thức biểu đạt chính của văn bản.
**Câu 2:** Văn bản *Người ăn xin* liên quan đến phương châm hội thoại nào? Vì sao?
**Câu 3:** Lời của các nhân vật trong câu chuyện trên được trích dẫn theo cách nào? Chỉ rõ dấu hiệu nhận biết.
**Câu 4:** Vì sao người ăn xin và cậu bé trong truyện đều cảm thấy mình đã nhận được từ người kia một cái gì đó?
**Câu 5:** Bài học rút ra từ văn bản trên?`,
				SuggestedAnswer: `**Gợi ý trả lời:**
**Câu 1:** Phương thức biểu đạt chính là tự sự (kết hợp miêu tả và biểu cảm).
**Câu 2:** Văn bản liên quan đến phương châm hội thoại lịch sự. Vì cả hai nhân vật ("tôi" và ông lão ăn xin) đều dùng cách thức tôn trọng, lịch sự trong giao tiếp với nhau.
**Câu 3:** Lời của các nhân vật được trích dẫn theo cách trực tiếp. Dấu hiệu nhận biết: Lời nói được đặt sau dấu hai chấm và dấu gạch ngang đầu dòng.
**Câu 4:**
- **Cậu bé ("tôi"):** Nhận được từ ông lão lời cảm ơn, nụ cười, và một bài học sâu sắc về sự đồng cảm, tình người, và giá trị của việc cho đi (dù chỉ là sự quan tâm chân thành).
- **Ông lão ăn xin:** Nhận được từ cậu bé sự quan tâm, lòng chân thành và cái nắm tay ấm áp, một món quà tinh thần quý giá hơn mọi của cải vật chất.
**Câu 5:** Bài học rút ra:
- Sự quan tâm, lòng chân thành chính là món quà tinh thần quý giá nhất.
- Phải biết yêu thương, chia sẻ, đồng cảm với hoàn cảnh, số phận của người khác.
- Khi cho đi cũng chính là lúc ta nhận lại.`,
			},
		},
	},
}

var literatureGrade9Final1 = []MockExam{
	{
		ID:     "nv9-ck1-de1-ocr-oe",
		Title:  "Đề 1 (Vĩnh Long 2023-2024) - Cuối kì 1",
		Source: "Sở GD&ĐT Vĩnh Long, Cuối kì 1, 2023-2024",
		Type:   TypeOpenEnded,
		OpenEnded: []model.OpenEndedQuestion{
			{
				Topic: "Đọc hiểu văn bản",
				Question: `**Đọc văn bản sau và trả lời các câu hỏi bên dưới:**

**VỀ THĂM MẸ**
- Đinh Nam Khương

Con về thăm mẹ chiều đông
Bếp chưa lên khói mẹ không có nhà
Mình con thơ thẩn vào ra
Trời đang yên vậy bỗng oà mưa rơi
Chum tương mẹ đã đậy rồi
Nón mê xưa đứng nay ngồi dầm mưa
Áo tơi qua buổi cày bừa
Giờ còn lủn củn khoác hờ người rơm
Đàn gà mới nở vàng ươm
Vào ra quanh một cái nơm hỏng vành
Bất ngờ rụng ở trên cành
Trái na cuối vụ mẹ dành phần con
Nghẹn ngào thương mẹ nhiều hơn
Rưng rưng từ chuyện giản đơn thường ngày.

*(Theo www.thivien.net)*

---

**Câu 1 (0.5 điểm):** Từ nào diễn tả tâm trạng của con khi về thăm nhà nhưng không gặp được mẹ?

**Câu 2 (0.5 điểm):** Vì sao chỉ trái na cuối vụ rụng khiến con nghẹn ngào?

**Câu 3 (1.0 điểm):** Với mô hình “giản + X”, tìm thêm tiếng điền vào chữ “X” để được 2 từ có cấu tạo theo mô hình này (Ví dụ: giản đơn); đặt câu với 1 trong 2 từ đó.

**Câu 4 (2.0 điểm):** Thuyết minh về công dụng, ý nghĩa của chiếc nón lá Việt Nam (bằng đoạn văn khoảng 100 chữ).`,
				SuggestedAnswer: `**Gợi ý trả lời:**
**Câu 1:** Từ diễn tả tâm trạng của người con là "thơ thẩn".
**Câu 2:** Trái na cuối vụ rụng khiến con nghẹn ngào vì đó là phần quả mà người mẹ đã chắt chiu, dành dụm cho con. Hình ảnh trái na gợi lên tình yêu thương, sự hy sinh và chăm chút của mẹ, khiến người con xúc động và thương mẹ nhiều hơn.
**Câu 3:**
- Các từ có thể tạo: giản dị, giản lược.
- Đặt câu (ví dụ): Bữa cơm mẹ nấu tuy **giản dị** nhưng ấm áp tình thương.
**Câu 4:**
- **Công dụng:** Che mưa, che nắng, làm quạt mát khi trời nóng. Trong chiến tranh, nón lá còn được dùng để ngụy trang.
- **Ý nghĩa:** Chiếc nón lá là biểu tượng của người phụ nữ Việt Nam dịu dàng, duyên dáng và cần cù. Nó gắn liền với hình ảnh làng quê Việt Nam thanh bình, là một nét đẹp văn hóa truyền thống và là một biểu tượng của quốc gia.`,
			},
		},
	},
}
